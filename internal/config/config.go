package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（3000）

	SQLitePath  string // ローカルDBファイルのパス
	DatabaseURL string // 指定があればPostgresを使う

	GoEnv string // dev/prod
}

// Loadは環境変数から読む。ローカル実行用のデフォルトあり
func Load() Config {
	return Config{
		Port:        getenv("PORT", "3000"),
		SQLitePath:  getenv("SQLITE_PATH", "products.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GoEnv:       getenv("GO_ENV", "dev"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
