package config

type (
	DriverConfig struct {
		MongoDB  MongoDB  `mapstructure:"mongodb"`
		Redis    Redis    `mapstructure:"redis"`
		Logger   Logger   `mapstructure:"logger"`
		RabbitMQ RabbitMQ `mapstructure:"rabbitmq"`
		Kafka    Kafka    `mapstructure:"kafka"`
		Minio    Minio    `mapstructure:"minio"`
		SMTP     SMTP     `mapstructure:"smtp"`
	}
	MongoDB struct {
		Host       string `mapstructure:"host"`
		Port       string `mapstructure:"port"`
		Username   string `mapstructure:"username"`
		Password   string `mapstructure:"password"`
		DbName     string `mapstructure:"db_name"`
		ReplicaSet string `mapstructure:"replica_set"`
	}
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}
	Logger struct {
		Level               string `mapstructure:"level"`
		OutputFileName      string `mapstructure:"output_file_name"`
		OutputErrorFileName string `mapstructure:"output_error_file_name"`
	}
	RabbitMQ struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}
	// Kafka carries the domain event stream. When Enabled is false events
	// are dropped.
	Kafka struct {
		Enabled  bool     `mapstructure:"enabled"`
		Brokers  []string `mapstructure:"brokers"`
		ClientID string   `mapstructure:"client_id"`
		Topic    string   `mapstructure:"topic"`
	}
	Minio struct {
		Host       string `mapstructure:"host"`
		Port       string `mapstructure:"port"`
		Username   string `mapstructure:"username"`
		Password   string `mapstructure:"password"`
		UseSSL     bool   `mapstructure:"use_ssl"`
		BucketName string `mapstructure:"bucket_name"`
	}
	SMTP struct {
		Host        string `mapstructure:"host"`
		Port        int    `mapstructure:"port"`
		Username    string `mapstructure:"username"`
		Password    string `mapstructure:"password"`
		EmailSender string `mapstructure:"email_sender"`
	}
)
