package host

import "github.com/yanizio/xmf/internal/bootstrap"

// App is the application handle templates see as "mojavi".
type App struct {
	Name  string
	Paths bootstrap.Paths
}
