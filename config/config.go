package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Store    *Store    `json:"store" yaml:"store"`
	MySQL    *MySQL    `json:"mysql" yaml:"mysql"`
	Mongo    *Mongo    `json:"mongo" yaml:"mongo"`
	Postgres *Postgres `json:"postgres" yaml:"postgres"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Cors     *Cors     `json:"cors" yaml:"cors"`
	Geo      *Geo      `json:"geo" yaml:"geo"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load 读取并解析配置文件，缺省项回落到默认值
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 %s 读取错误: %w", filename, err)
	}

	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Store == nil {
		c.Store = &Store{}
	}
	if c.Store.Driver == "" {
		c.Store.Driver = DriverMemory
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.Mongo == nil {
		c.Mongo = &Mongo{}
	}
	if c.Postgres == nil {
		c.Postgres = &Postgres{}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Cors == nil {
		c.Cors = &Cors{}
	}
	if c.Geo == nil {
		c.Geo = &Geo{}
	}
	c.Geo.applyDefaults()
}

// Redacted 用于打印的副本，隐藏口令类字段
func (c *Config) Redacted() *Config {
	cp := *c
	if c.Jwt != nil {
		jwt := *c.Jwt
		jwt.Secret = mask(jwt.Secret)
		cp.Jwt = &jwt
	}
	if c.MySQL != nil {
		m := *c.MySQL
		m.Password = mask(m.Password)
		cp.MySQL = &m
	}
	if c.Postgres != nil {
		p := *c.Postgres
		p.Password = mask(p.Password)
		cp.Postgres = &p
	}
	if c.Redis != nil {
		r := *c.Redis
		r.Password = mask(r.Password)
		cp.Redis = &r
	}
	return &cp
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "******"
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
