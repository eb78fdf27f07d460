package bootstrap

import (
	"restaurant-pos-be/internal/config"
	"restaurant-pos-be/internal/controller"
	"restaurant-pos-be/internal/pkg/logger"
	"restaurant-pos-be/internal/repository/unitofwork"
	"restaurant-pos-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	ProductController      controller.IProductController
	TableController        controller.ITableController
	TableSessionController controller.ITableSessionController
	OrderController        controller.IOrderController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	productService := service.NewProductService(uowFactory)
	tableService := service.NewTableService(uowFactory)
	tableSessionService := service.NewTableSessionService(uowFactory, sysLogger)
	orderService := service.NewOrderService(uowFactory, sysLogger)

	return &Container{
		Logger: sysLogger,

		ProductController:      controller.NewProductController(productService),
		TableController:        controller.NewTableController(tableService),
		TableSessionController: controller.NewTableSessionController(tableSessionService),
		OrderController:        controller.NewOrderController(orderService),
	}
}
