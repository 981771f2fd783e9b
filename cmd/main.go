package main

import (
	"context"
	"fmt"
	"github.com/AngeloGiacco/cid-moreira/application/services"
	"github.com/AngeloGiacco/cid-moreira/config"
	"github.com/AngeloGiacco/cid-moreira/infrastructure/adapters"
	"github.com/AngeloGiacco/cid-moreira/infrastructure/gin_interface/controllers"
	"github.com/AngeloGiacco/cid-moreira/middleware"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"os"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, relying on the environment")
	}

	gptConfig, err := config.GetGptConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gpt config")
	}

	promptConfig, err := config.GetPromptConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get prompt config")
	}

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	postgresConfig, err := config.GetPostgresConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get postgres config")
	}

	redisConfig, err := config.GetRedisConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get redis config")
	}

	httpClientConfig, err := config.GetHttpClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get http client config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))
	s3Client := s3.New(sess)

	db, err := gorm.Open(postgres.Open(postgresConfig.Dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to postgres")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisConfig.Addr,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			zeroLogger.Error(err, "Failed to close redis client")
		}
	}()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to redis")
	}

	contentFetcher := adapters.NewContentFetcher(httpClientConfig.Timeout, zeroLogger)

	narrationGenerator := adapters.NewNarrationGenerator(contentFetcher, gptConfig, promptConfig, zeroLogger)

	speechSynthesizer := adapters.NewSpeechSynthesizer(contentFetcher, elevenLabsConfig, zeroLogger)

	audioStore := adapters.NewS3AudioStore(s3Client, s3Config, zeroLogger)

	messageRepository := adapters.NewPostgresMessageRepository(db, zeroLogger)

	messageCache := adapters.NewRedisMessageCache(redisClient, redisConfig, zeroLogger)

	voiceMessageCreator := services.NewVoiceMessageCreator(zeroLogger, workerPool, narrationGenerator,
		speechSynthesizer, audioStore, messageRepository)

	messageReader := services.NewMessageReader(zeroLogger, messageCache, messageRepository)

	voiceMessagesController := controllers.NewVoiceMessagesController(zeroLogger, voiceMessageCreator, messageReader)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.CORSMiddleware())

	voiceMessagesController.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
