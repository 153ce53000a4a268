package main

import (
	"log"
	"net/http"
	"time"

	"practicequiz-service/internal/cache"
	"practicequiz-service/internal/config"
	"practicequiz-service/internal/database/mongo"
	"practicequiz-service/internal/database/redis"
	"practicequiz-service/internal/event"
	"practicequiz-service/internal/handlers"
	"practicequiz-service/internal/repository"
	"practicequiz-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	if err := mongo.InitMongoDB(&cfg.MongoDB); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongo.CloseDB()

	// Redis is optional; without it the seen-set cache degrades to a no-op
	var seenCache *cache.SeenCache
	if cfg.Redis.Address != "" {
		if err := redis.InitRedis(&cfg.Redis); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redis.CloseRedis()
		seenCache = cache.NewSeenCache(redis.Redis_Client, cfg.Redis.SeenTTL)
	} else {
		log.Println("Redis not configured, seen-set caching disabled")
	}

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, practice events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := mongo.Database

	// Patterns (the study subjects)
	patternRepo := repository.NewPatternRepository(database)
	patternService := service.NewPatternService(patternRepo)
	patternHandler := handlers.NewPatternHandler(patternService)

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Learner profiles
	profileRepo := repository.NewProfileRepository(database)
	profileService := service.NewProfileService(profileRepo)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Attempts and answers
	attemptRepo := repository.NewAttemptRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	attemptService := service.NewAttemptService(attemptRepo, answerRepo)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	// Adaptive practice-quiz generation
	practiceService := service.NewPracticeService(profileRepo, questionRepo, attemptRepo, seenCache, nil)
	practiceHandler := handlers.NewPracticeHandler(practiceService)

	// Public routes - Patterns
	publicPattern := r.Group("/public/practice/pattern")
	{
		publicPattern.GET("/", patternHandler.GetAllPatterns)
		publicPattern.GET("/:id", patternHandler.GetPatternByID)
		publicPattern.GET("/category/:category", patternHandler.GetPatternsByCategory)
	}

	publicQuestion := r.Group("/public/practice/question")
	{
		publicQuestion.GET("/", questionHandler.ListQuestions)
		publicQuestion.GET("/:id", questionHandler.GetQuestion)
	}

	// Protected routes - question management
	protectedQuestion := r.Group("/protected/practice/question")
	protectedQuestion.Use(requireUserID())
	{
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
		protectedQuestion.POST("/bulk", questionHandler.BulkCreateQuestions)
	}

	// Protected routes - learner profiles
	protectedProfile := r.Group("/protected/practice/profile")
	protectedProfile.Use(requireUserID())
	{
		protectedProfile.GET("/:patternId", profileHandler.GetProfile)
		protectedProfile.PUT("/:patternId", profileHandler.UpsertProfile)
	}

	setupPracticeRoutes(r, practiceHandler, attemptHandler, publisher)

	r.Run(":" + cfg.Server.Port)
}

func setupPracticeRoutes(
	r *gin.Engine,
	practiceHandler *handlers.PracticeHandler,
	attemptHandler *handlers.AttemptHandler,
	publisher *event.EventPublisher,
) {
	protectedQuiz := r.Group("/protected/practice/quiz")
	protectedQuiz.Use(requireUserID())
	{
		// Generate an adaptive practice quiz and create its attempt
		protectedQuiz.POST("/", func(c *gin.Context) {
			practiceHandler.GeneratePracticeQuiz(c)
			if publisher != nil {
				publisher.Publish("practice.quiz.generated", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})
	}

	protectedAttempt := r.Group("/protected/practice/attempt")
	protectedAttempt.Use(requireUserID())
	{
		protectedAttempt.GET("/:id", attemptHandler.GetAttempt)
		protectedAttempt.GET("/:id/answers", attemptHandler.GetAnswers)

		protectedAttempt.POST("/:id/answer", func(c *gin.Context) {
			attemptHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("practice.attempt.answer_submitted", gin.H{
					"attempt_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
				})
			}
		})

		protectedAttempt.POST("/:id/submit", func(c *gin.Context) {
			attemptHandler.SubmitAttempt(c)
			if publisher != nil {
				publisher.Publish("practice.attempt.submitted", gin.H{
					"attempt_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
				})
			}
		})
	}
}

// requireUserID rejects requests without the X-User-ID header set by the
// upstream auth gateway.
func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
