package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Calc   CalcConfig   `toml:"calc"`
	Export ExportConfig `toml:"export"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	DevMode bool   `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// CalcConfig 计算相关配置
type CalcConfig struct {
	// DefaultSAT 默认送风温度 (°F)，计算请求未指定 sat 时使用
	DefaultSAT float64 `toml:"default_sat"`
}

// ExportConfig 导出相关配置
type ExportConfig struct {
	FilePrefix string `toml:"file_prefix"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	ConfigPath string // 实际读取的配置文件路径，未读到文件时为空
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:    "127.0.0.1",
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Calc: CalcConfig{
			DefaultSAT: 55.0,
		},
		Export: ExportConfig{
			FilePrefix: "airflow_results",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 加载配置并返回元信息
// 优先级: 环境变量 > 配置文件 > 默认值；命令行开关由调用方最后覆盖。
// explicitPath 非空时文件必须存在；为空时读取可执行文件同目录的
// config.toml，不存在则静默使用默认值。.env 先于环境变量读取载入
func LoadConfigWithInfo(explicitPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	// .env 可选，不存在时静默忽略
	_ = godotenv.Load()

	configPath := explicitPath
	if configPath == "" {
		exeDir, err := GetExeDir()
		if err != nil {
			// 无法获取可执行文件目录，使用当前目录
			exeDir = "."
		}
		configPath = filepath.Join(exeDir, "config.toml")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && explicitPath == "" {
			// 配置文件不存在，使用默认配置
			applyEnvOverrides(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.ConfigPath = configPath

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config)

	return config, info, nil
}

// applyEnvOverrides 环境变量覆盖（用于 E2E / 本地运行）
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("VENTCALC_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("VENTCALC_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("VENTCALC_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("VENTCALC_SAT"); v != "" {
		if sat, err := strconv.ParseFloat(v, 64); err == nil && sat > 0 {
			config.Calc.DefaultSAT = sat
		}
	}
}

// EnsureDataDir 确保数据目录存在
// 相对路径挂在可执行文件同目录下，绝对路径原样使用
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := resolveDataDir(config)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	// 创建子目录
	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// GetDataPath 获取数据文件路径
func GetDataPath(config *AppConfig, subdir, filename string) string {
	return filepath.Join(resolveDataDir(config), subdir, filename)
}

func resolveDataDir(config *AppConfig) string {
	if filepath.IsAbs(config.Data.DataDir) {
		return config.Data.DataDir
	}
	exeDir, err := GetExeDir()
	if err != nil || exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir)
}
