package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nikisathe/Doctor-appointment-booking/Controllers"
	"github.com/nikisathe/Doctor-appointment-booking/CronJobs"
	"github.com/nikisathe/Doctor-appointment-booking/Ledgers"
	"github.com/nikisathe/Doctor-appointment-booking/Mailer"
	"github.com/nikisathe/Doctor-appointment-booking/Routes"
	"github.com/nikisathe/Doctor-appointment-booking/Storage"
	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	Utils.LoadConfig()
	Utils.InitializeLogger()
	defer Utils.GetLogger().Sync()

	if Utils.AppConfig.JWTSecret == "" {
		Utils.GetLogger().Fatal("JWT_SECRET is required")
	}

	store := openStore()
	Utils.InitSessionStore()

	accounts := Ledgers.NewAccountDirectory(store)
	appointments := Ledgers.NewAppointmentLedger(store)
	reviews := Ledgers.NewReviewLedger(store)
	Controllers.Init(accounts, appointments, reviews)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router)

	reminderService := CronJobs.NewAppointmentReminder(appointments, accounts, Mailer.NewLogMailer())
	scheduler := reminderService.StartReminderCron(Utils.AppConfig.ReminderMins)
	defer scheduler.Stop()

	Utils.GetLogger().Info("listening", zap.String("port", Utils.AppConfig.AppPort))
	if err := router.Run(":" + Utils.AppConfig.AppPort); err != nil {
		Utils.GetLogger().Fatal("server exited", zap.Error(err))
	}
}

// openStore picks the persistence backend from config. Every backend
// carries the same collection semantics; only durability differs.
func openStore() Storage.Store {
	logger := Utils.GetLogger()
	switch Utils.AppConfig.StorageDriver {
	case "postgres":
		store, err := Storage.NewPostgresStore(Utils.AppConfig.DatabaseDSN)
		if err != nil {
			logger.Fatal("postgres store", zap.Error(err))
		}
		return store
	case "redis":
		store, err := Storage.NewRedisStore(
			Utils.AppConfig.RedisAddr, Utils.AppConfig.RedisPassword, Utils.AppConfig.RedisDB)
		if err != nil {
			logger.Fatal("redis store", zap.Error(err))
		}
		return store
	case "memory":
		return Storage.NewMemoryStore()
	case "file", "":
		store, err := Storage.NewFileStore(Utils.AppConfig.DataDir)
		if err != nil {
			logger.Fatal("file store", zap.Error(err))
		}
		return store
	default:
		logger.Fatal("unknown STORAGE_DRIVER", zap.String("driver", Utils.AppConfig.StorageDriver))
		return nil
	}
}
