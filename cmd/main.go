package main

import (
	"os"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/cronjobs"
	"github.com/vReis72/nutri-vita-plan-sub000/routes"
	"github.com/vReis72/nutri-vita-plan-sub000/utils"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	r := routes.SetupRouter()

	sweeper := cronjobs.NewInvitationSweeper(config.DB)
	sweeper.Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
