package app

import (
	"hridayavayu/config"
	inferenceController "hridayavayu/internal/controllers/inference"
	profileController "hridayavayu/internal/controllers/profile"
	quizController "hridayavayu/internal/controllers/quiz"
	reminderController "hridayavayu/internal/controllers/reminder"
	telemetryController "hridayavayu/internal/controllers/telemetry"
	"hridayavayu/internal/database"
	"hridayavayu/internal/logger"
	"hridayavayu/internal/repositories"
	"hridayavayu/internal/services"
)

type App struct {
	Database database.DB
	Config   config.Config

	// Services
	TransactionService *services.TransactionService
	InferenceService   *services.InferenceService

	// Repositories
	UserRepo     repositories.UserRepository
	QuizRepo     repositories.QuizRepository
	AlertRepo    repositories.AlertRepository
	SensorRepo   repositories.SensorRepository
	InhalerRepo  repositories.InhalerRepository
	ReminderRepo repositories.ReminderRepository

	// Controllers
	ProfileController   *profileController.ProfileController
	QuizController      *quizController.QuizController
	InferenceController *inferenceController.InferenceController
	TelemetryController *telemetryController.TelemetryController
	ReminderController  *reminderController.ReminderController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	// Initialize services
	transactionService := services.NewTransactionService(db)
	inferenceService := services.NewInferenceService(config.AIModelURL)

	// Initialize repositories
	userRepo := repositories.NewUser(db)
	quizRepo := repositories.NewQuiz(db)
	alertRepo := repositories.NewAlert(db)
	sensorRepo := repositories.NewSensor(db)
	inhalerRepo := repositories.NewInhaler(db)
	reminderRepo := repositories.NewReminder(db)

	// Initialize controllers with repositories and services
	app := &App{
		Database:            db,
		Config:              config,
		TransactionService:  transactionService,
		InferenceService:    inferenceService,
		UserRepo:            userRepo,
		QuizRepo:            quizRepo,
		AlertRepo:           alertRepo,
		SensorRepo:          sensorRepo,
		InhalerRepo:         inhalerRepo,
		ReminderRepo:        reminderRepo,
		ProfileController:   profileController.New(userRepo, transactionService),
		QuizController:      quizController.New(quizRepo),
		InferenceController: inferenceController.New(sensorRepo, quizRepo, alertRepo, inferenceService),
		TelemetryController: telemetryController.New(sensorRepo, inhalerRepo),
		ReminderController:  reminderController.New(reminderRepo),
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.TransactionService,
		a.InferenceService,
		a.UserRepo,
		a.QuizRepo,
		a.AlertRepo,
		a.SensorRepo,
		a.InhalerRepo,
		a.ReminderRepo,
		a.ProfileController,
		a.QuizController,
		a.InferenceController,
		a.TelemetryController,
		a.ReminderController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
