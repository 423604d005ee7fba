package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	RedisAddr           string
	RedisPassword       string
	AmqpURL             string
	AmqpExchange        string
	JWTSecret           string
	SMSSenderName       string
	RegionMultiple      string
	RegionLocale        string
	StaleOrderThreshold string
}
