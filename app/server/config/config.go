package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
		SnowflakeNode         int64  // Snowflake 节点编号，多实例部署时需要各自唯一
	}
	Security struct {
		JWTSecret      string // 签名密钥，用于签发会话令牌，更新会导致旧有会话失效
		JWTSecretIsDev bool   // 是否回落到了开发用默认密钥
	}
}
