//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/catalog"
	"github.com/ecodeclub/takeout/internal/order"
	"github.com/ecodeclub/takeout/internal/payment"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		catalog.InitModule,
		cart.InitModule,
		address.InitModule,
		payment.InitModule,
		order.InitModule,
		wire.FieldsOf(new(*catalog.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wire.FieldsOf(new(*address.Module), "Hdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
