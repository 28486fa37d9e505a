package fx

import "go.uber.org/fx"

// AppModule assembles every layer of the application.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	RoutesModule,
	ServerModule,
)
