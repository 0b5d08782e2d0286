package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

func New(logger *slog.Logger, newsManager *newsportal.Manager, gate *auth.Gate) *zenrpc.Server {
	rpcService := NewNewsService(newsManager, gate)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "news-board", nil))

	return rpcServer
}
