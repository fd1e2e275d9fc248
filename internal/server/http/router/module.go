package router

import "go.uber.org/fx"

// Module provides the gin engine serving public and back-office routes.
var Module = fx.Provide(Setup)
