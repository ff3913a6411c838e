package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"terminal-terrace/mp-article/config"
	_ "terminal-terrace/mp-article/docs"
	"terminal-terrace/mp-article/internal/cleanup"
	"terminal-terrace/mp-article/internal/database"
	"terminal-terrace/mp-article/internal/grpc"
	"terminal-terrace/mp-article/internal/route"
)

// @title 公众号文章管理 API
// @version 1.0
// @description 公众号文章的查询、删除、翻页与清理接口
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	initSwagger := flag.Bool("init-swagger", false, "重新生成 swagger 文档后退出")
	flag.Parse()

	if *initSwagger {
		config.InitProgram()
		return
	}

	// 1. 加载配置
	config.MustLoad(*configPath)
	conf := config.Conf

	// 2. 初始化数据库
	database.InitDatabase()
	defer database.Close()

	// 3. 设置路由
	r := route.SetupRouter(database.DB, conf)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.Server.Host, conf.Server.Port),
		Handler:      r,
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 4. gRPC 健康检查
	var grpcServer *grpc.Server
	if conf.Server.GRPCPort > 0 {
		var err error
		grpcServer, err = grpc.NewServer(conf.Server.GRPCPort, conf.JWT.Secret)
		if err != nil {
			log.Fatalf("Failed to create gRPC server: %v", err)
		}
		go func() {
			log.Printf("gRPC server listening on %s", grpcServer.GetAddr())
			if err := grpcServer.Start(); err != nil {
				log.Printf("gRPC server stopped: %v", err)
			}
		}()
	}

	// 5. 定时清理
	var scheduler *cleanup.Scheduler
	if conf.Cleanup.Schedule != "" {
		cleanupService := cleanup.NewCleanupService(database.DB)
		lockTTL := time.Duration(conf.Cleanup.LockTTL) * time.Second
		scheduler = cleanup.NewScheduler(
			cleanupService,
			cleanupService,
			cleanup.NewJobLock(database.RedisDB, lockTTL),
			conf.Cleanup.Schedule,
			lockTTL,
		)
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Failed to start cleanup scheduler: %v", err)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown Server ...")

	if scheduler != nil {
		scheduler.Stop()
	}
	if grpcServer != nil {
		grpcServer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}
	log.Println("Server exiting")
}
