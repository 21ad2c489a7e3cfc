package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"passwordStrength/internal/generator"
	"passwordStrength/internal/strength"
	"passwordStrength/internal/tips"
)

// EnvPrefix — префикс переменных окружения; PWSTRENGTH_CONFIG задает путь к файлу
const EnvPrefix = "PWSTRENGTH"

type Config struct {
	App       AppSettings       `mapstructure:"app"`
	Window    WindowSettings    `mapstructure:"window"`
	UI        UISettings        `mapstructure:"ui"`
	Scorer    ScorerSettings    `mapstructure:"scorer"`
	Generator GeneratorSettings `mapstructure:"generator"`
	Tips      []string          `mapstructure:"tips" validate:"required,min=1,dive,required"`
}

type AppSettings struct {
	ID    string `mapstructure:"id" validate:"required"`
	Title string `mapstructure:"title" validate:"required"`
	Env   string `mapstructure:"env" validate:"oneof=development production"`
}

type WindowSettings struct {
	Width  float32 `mapstructure:"width" validate:"gt=0"`
	Height float32 `mapstructure:"height" validate:"gt=0"`
}

type UISettings struct {
	// Animate включает плавное заполнение индикатора
	Animate bool `mapstructure:"animate"`
}

type ScorerSettings struct {
	SpecialChars string `mapstructure:"special_chars"`
}

// GeneratorSettings — пустые наборы заменяются стандартными
type GeneratorSettings struct {
	Upper   string `mapstructure:"upper"`
	Lower   string `mapstructure:"lower"`
	Digits  string `mapstructure:"digits"`
	Special string `mapstructure:"special"`
}

func (g GeneratorSettings) Classes() generator.Classes {
	return generator.Classes{
		Upper:   g.Upper,
		Lower:   g.Lower,
		Digits:  g.Digits,
		Special: g.Special,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.id", "io.github.pwstrength")
	v.SetDefault("app.title", "Проверка надежности пароля")
	v.SetDefault("app.env", "development")
	v.SetDefault("window.width", 520)
	v.SetDefault("window.height", 640)
	v.SetDefault("ui.animate", true)
	v.SetDefault("scorer.special_chars", strength.DefaultSpecialChars)
	v.SetDefault("generator.upper", generator.DefaultClasses.Upper)
	v.SetDefault("generator.lower", generator.DefaultClasses.Lower)
	v.SetDefault("generator.digits", generator.DefaultClasses.Digits)
	v.SetDefault("generator.special", generator.DefaultClasses.Special)
	v.SetDefault("tips", tips.DefaultTips)
}

// Load читает config.yaml из "." или "./config" либо файл из path.
// Отсутствие файла в путях поиска не ошибка: действуют значения по умолчанию.
func Load(path string) (*Config, string, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, "", err
	}

	return &cfg, v.ConfigFileUsed(), nil
}

// Validate проверяет теги структуры и то, что каждый символ генератора
// засчитывается оценщиком: иначе предложенный пароль набирает меньше 90.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	scored := cfg.Scorer.SpecialChars
	if scored == "" {
		scored = strength.DefaultSpecialChars
	}
	classes := cfg.Generator.Classes().WithDefaults()

	checks := []struct {
		key string
		set string
		ok  func(rune) bool
	}{
		{"generator.upper", classes.Upper, inRange('A', 'Z')},
		{"generator.lower", classes.Lower, inRange('a', 'z')},
		{"generator.digits", classes.Digits, inRange('0', '9')},
		{"generator.special", classes.Special, func(r rune) bool { return strings.ContainsRune(scored, r) }},
	}
	for _, c := range checks {
		for _, r := range c.set {
			if !c.ok(r) {
				return fmt.Errorf("invalid config: %s: %q is not counted by the scorer", c.key, r)
			}
		}
	}
	return nil
}

func inRange(lo, hi rune) func(rune) bool {
	return func(r rune) bool { return r >= lo && r <= hi }
}
