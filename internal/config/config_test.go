package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Nexus Lawncare", cfg.Site.Name)
	assert.Equal(t, "/", cfg.Site.BasePath)
	assert.Equal(t, "/", cfg.Site.FrontPage)
	assert.True(t, cfg.Theme.Slideshow.Enabled)
	assert.Len(t, cfg.Theme.Slideshow.Slides, 3)
	assert.Equal(t, 4, cfg.Theme.Columns.Preface)
	assert.Equal(t, 3, cfg.Theme.Columns.Footer)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("site.name", "Cedar Lawn")
	viper.Set("site.base_path", "/cedar/")
	viper.Set("theme.slideshow.enabled", false)
	viper.Set("theme.columns.footer", 6)
	viper.Set("locale", "es")
	viper.Set("server.port", 3000)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Cedar Lawn", cfg.Site.Name)
	assert.Equal(t, "/cedar/", cfg.Site.BasePath)
	assert.Equal(t, "/cedar/", cfg.Site.FrontPage, "front page defaults to base path")
	assert.False(t, cfg.Theme.Slideshow.Enabled)
	assert.Equal(t, 6, cfg.Theme.Columns.Footer)
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("server.port", 99999)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestLoad_InvalidBasePath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("site.base_path", "no-leading-slash/")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_path")
}

func TestValidateServerConfig_DangerousHost(t *testing.T) {
	err := validateServerConfig(&ServerConfig{Port: 8080, Host: "localhost;rm"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangerous character")
}

func TestValidateAssetPath(t *testing.T) {
	assert.NoError(t, validateAssetPath("images/slide-1.jpg"))
	assert.Error(t, validateAssetPath(""))
	assert.Error(t, validateAssetPath("../../../etc/passwd"))
	assert.Error(t, validateAssetPath("/absolute/path.jpg"))
	assert.Error(t, validateAssetPath("images/$(whoami).jpg"))
}
