package config

import (
	"time"

	"github.com/gin-contrib/cors"
)

type Cors struct {
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
}

// Build 生成 gin-contrib/cors 配置，"*" 视为放开全部来源
func (c *Cors) Build() cors.Config {
	conf := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range c.AllowOrigins {
		if o == "*" {
			conf.AllowAllOrigins = true
			return conf
		}
	}
	if len(c.AllowOrigins) == 0 {
		conf.AllowAllOrigins = true
		return conf
	}
	conf.AllowOrigins = c.AllowOrigins
	return conf
}
