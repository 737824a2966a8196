package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 全部运行时配置，启动时一次性读取
type Config struct {
	ServerPort string
	Debug      bool

	// 存储
	DatabaseDSN string // 非空用 Postgres，否则落到 SQLite
	SQLitePath  string

	// 目录发布
	PublishSecret string

	// 邮件
	ResendAPIKey   string
	OrderRecipient string // 店主收件地址
	EmailFrom      string

	// 对象存储（不配则上传走开发模式）
	AWSBucket    string
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	AWSCDNDomain string

	// 限流
	RateLimitWindow time.Duration
	RateLimitMax    int64
}

// Load 读取 .env（没有也不报错）和环境变量
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用环境变量")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Debug:      getEnvBool("DEBUG", false),

		DatabaseDSN: getEnv("DATABASE_DSN", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "selling_sisters.db"),

		PublishSecret: getEnv("CONTENT_PUBLISH_SECRET", ""),

		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		OrderRecipient: getEnv("ORDER_EMAIL_RECIPIENT", "sellingsisters.shop@gmail.com"),
		EmailFrom:      getEnv("EMAIL_FROM", "Selling Sisters <orders@resend.dev>"),

		AWSBucket:    getEnv("AWS_BUCKET", ""),
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSCDNDomain: getEnv("AWS_CDN_DOMAIN", ""),

		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		RateLimitMax:    int64(getEnvInt("RATE_LIMIT_MAX_REQUESTS", 10)),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("配置 %s=%q 不是数字，使用默认值 %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
