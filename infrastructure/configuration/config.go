package configuration

import (
	"fmt"
	"os"
	"strconv"

	"youtube-summarizer/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Google      Google      `json:"google"`
	Microsoft   Microsoft   `json:"microsoft"`
	OneNote     OneNote     `json:"onenote"`
	RedisClient RedisClient `json:"redisClient"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	// CallbackPort is where the transient OAuth listener binds.
	CallbackPort int `json:"callbackPort"`
	// TranscriptLanguage is the preferred caption language.
	TranscriptLanguage string `json:"transcriptLanguage"`
}

type Google struct {
	// APIKey serves both the Gemini endpoint and the YouTube Data API.
	APIKey string `json:"apiKey"`
	Model  string `json:"model"`
}

type Microsoft struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
	// TokenCacheFile holds the serialized AuthToken between runs.
	TokenCacheFile string `json:"tokenCacheFile"`
}

type OneNote struct {
	NotebookName string `json:"notebookName"`
	SectionName  string `json:"sectionName"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Logger struct {
	Format string `json:"format"`
}

var C Config

func init() {
	Reload()
}

// Reload re-reads the config file and re-applies env overrides. main calls
// this after loading env files, since package init runs before them.
func Reload() {
	LoadConfig()
	initGoogle(&C)
	initMicrosoft(&C)
	initOneNote(&C)
	initApp(&C)
	initRedis(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; env variables alone are enough
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initGoogle(C *Config) {
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		C.Google.APIKey = v
	}
	if C.Google.Model == "" {
		C.Google.Model = "gemini-2.5-flash"
	}
}

func initMicrosoft(C *Config) {
	if v := os.Getenv("MICROSOFT_CLIENT_ID"); v != "" {
		C.Microsoft.ClientID = v
	}
	if v := os.Getenv("MICROSOFT_CLIENT_SECRET"); v != "" {
		C.Microsoft.ClientSecret = v
	}
	if v := os.Getenv("MICROSOFT_REDIRECT_URI"); v != "" {
		C.Microsoft.RedirectURI = v
	}
	if C.Microsoft.TokenCacheFile == "" {
		C.Microsoft.TokenCacheFile = "token_cache.json"
	}
}

func initOneNote(C *Config) {
	if v := os.Getenv("ONENOTE_NOTEBOOK_NAME"); v != "" {
		C.OneNote.NotebookName = v
	}
	if v := os.Getenv("ONENOTE_SECTION_NAME"); v != "" {
		C.OneNote.SectionName = v
	}
	if C.OneNote.NotebookName == "" {
		C.OneNote.NotebookName = "YouTube Summaries"
	}
	if C.OneNote.SectionName == "" {
		C.OneNote.SectionName = "AI Generated Summaries"
	}
}

func initApp(C *Config) {
	if v := os.Getenv("CALLBACK_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.CallbackPort = p
		}
	}
	if C.App.CallbackPort == 0 {
		C.App.CallbackPort = 8765
	}
	if C.App.TranscriptLanguage == "" {
		C.App.TranscriptLanguage = "en"
	}
	// Redirect URI derives from the callback port unless set explicitly
	if C.Microsoft.RedirectURI == "" {
		C.Microsoft.RedirectURI = fmt.Sprintf("http://localhost:%d/callback", C.App.CallbackPort)
	}
}

func initRedis(C *Config) {
	if v := os.Getenv("REDIS_HOST"); v != "" {
		C.RedisClient.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		C.RedisClient.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		C.RedisClient.Password = v
	}
}

// OneNoteEnabled reports whether the OneNote subsystem can be wired at all.
func (c *Config) OneNoteEnabled() bool {
	return c.Microsoft.ClientID != ""
}
