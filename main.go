package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Daison12121/bella-vista-restaurant/configs"
	"github.com/Daison12121/bella-vista-restaurant/middlewares"
	"github.com/Daison12121/bella-vista-restaurant/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedTables(); err != nil {
		log.Fatalf("seed tables failed: %v", err)
	}
	if err := configs.SeedCategories(); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, configs.DB())

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
