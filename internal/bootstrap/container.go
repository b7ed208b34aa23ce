package bootstrap

import (
	"stembills-dashboard/internal/config"
	"stembills-dashboard/internal/constant"
	"stembills-dashboard/internal/controller"
	"stembills-dashboard/internal/handler"
	"stembills-dashboard/internal/pkg/logger"
	"stembills-dashboard/internal/repository/contract"
	"stembills-dashboard/internal/service"
	"stembills-dashboard/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	DashboardController controller.IDashboardController
	DatasetController   controller.IDatasetController

	// Background Services (Exposed for main.go to run)
	CallbackStats service.ICallbackStatsService

	// WebSockets
	UpdateHandler *handler.UpdateHandler
	WebSocketHub  *websocket.Hub

	Logger logger.ILogger
	PubSub *gochannel.GoChannel
}

// NewContainer wires every service around an already loaded bill table.
func NewContainer(cfg *config.Config, repo contract.BillRepository, log logger.ILogger) (*Container, error) {
	// 1. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(cfg.App.Debug, false),
	)

	// 2. Services
	publisher := service.NewCallbackPublisher(pubSub, constant.CallbackTopic, log)
	stats := service.NewCallbackStatsService(pubSub, constant.CallbackTopic, log)

	layoutService := service.NewLayoutService(repo)
	figureService := service.NewFigureService(repo, log)
	dashboardService, err := service.NewDashboardService(repo, layoutService, figureService, publisher, log)
	if err != nil {
		return nil, err
	}

	// 3. WebSocket hub logs to its own file so hover traffic stays out of the main log.
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	hub := websocket.NewHub(dashboardService, wsLogger)

	return &Container{
		DashboardController: controller.NewDashboardController(dashboardService, cfg.App.Title),
		DatasetController:   controller.NewDatasetController(dashboardService, stats),
		CallbackStats:       stats,
		UpdateHandler:       handler.NewUpdateHandler(hub, wsLogger),
		WebSocketHub:        hub,
		Logger:              log,
		PubSub:              pubSub,
	}, nil
}
