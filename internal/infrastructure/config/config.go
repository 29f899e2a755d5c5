// Package config は設定ファイルの読み込みを提供します
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/domain/model"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/logging"
)

// フォルダ選択ダイアログの種類
const (
	// PickerNative はOS標準のダイアログを使います
	PickerNative = "native"
	// PickerFyne は Fyne 製のダイアログを使います
	PickerFyne = "fyne"
	// PickerNone はダイアログを出さずカレントディレクトリを使います
	PickerNone = "none"
)

// ConfigName は設定ファイルの基本名です（拡張子は問いません）
const ConfigName = "foldertree"

// Settings は起動時に一度だけ読み込まれ、実行中は変更されない設定です
type Settings struct {
	// ShowIcons は木の各行に絵文字アイコンを付けるかどうかです
	ShowIcons bool
	// Picker は使用するフォルダ選択ダイアログの種類です
	Picker string
	// Policy は木の配色です
	Policy model.ColorPolicy
	// ExportEnabled は構成のJSONスナップショットを書き出すかどうかです
	ExportEnabled bool
	// ExportDir はスナップショットの出力先ディレクトリです
	ExportDir string
}

// Load は設定を読み込みます。configFile が空の場合はカレントディレクトリと
// ~/.config/foldertree から foldertree.* を探します。設定ファイルが
// 見つからない場合は既定値で動作します。
func Load(logger logging.Logger, configFile string) (Settings, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "foldertree"))
		}
	}

	v.SetDefault("show_icons", true)
	v.SetDefault("picker", PickerNative)
	v.SetDefault("export.enabled", false)
	v.SetDefault("export.dir", ".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
		logger.Log(logging.LevelInfo, "設定ファイルが見つからないため既定値で動作します", nil)
	} else {
		logger.Log(logging.LevelInfo, fmt.Sprintf("設定ファイルを読み込みました: %s", v.ConfigFileUsed()), nil)
	}

	settings := Settings{
		ShowIcons:     v.GetBool("show_icons"),
		Picker:        v.GetString("picker"),
		Policy:        model.DefaultColorPolicy(),
		ExportEnabled: v.GetBool("export.enabled"),
		ExportDir:     v.GetString("export.dir"),
	}

	applyColorOverrides(logger, v, &settings.Policy)

	switch settings.Picker {
	case PickerNative, PickerFyne, PickerNone:
	default:
		logger.Log(logging.LevelWarn,
			fmt.Sprintf("不明なピッカー指定 '%s' のため %s を使用します", settings.Picker, PickerNative), nil)
		settings.Picker = PickerNative
	}

	return settings, nil
}

// applyColorOverrides は設定ファイルの色指定で既定の配色を上書きします。
// 不明なスタイル名は WARN ログを残して該当の指定だけを無視します。
func applyColorOverrides(logger logging.Logger, v *viper.Viper, policy *model.ColorPolicy) {
	if name := v.GetString("colors.root"); name != "" {
		if token, err := model.ParseStyleToken(name); err != nil {
			logger.Log(logging.LevelWarn, "colors.root の指定を無視します", err)
		} else {
			policy.RootStyle = token
		}
	}

	if name := v.GetString("colors.error"); name != "" {
		if token, err := model.ParseStyleToken(name); err != nil {
			logger.Log(logging.LevelWarn, "colors.error の指定を無視します", err)
		} else {
			policy.ErrorStyle = token
		}
	}

	if name := v.GetString("colors.default_file"); name != "" {
		if token, err := model.ParseStyleToken(name); err != nil {
			logger.Log(logging.LevelWarn, "colors.default_file の指定を無視します", err)
		} else {
			policy.DefaultStyle = token
		}
	}

	if names := v.GetStringSlice("colors.depth"); len(names) > 0 {
		depth := make([]model.StyleToken, 0, len(names))
		valid := true
		for _, name := range names {
			token, err := model.ParseStyleToken(name)
			if err != nil {
				logger.Log(logging.LevelWarn, "colors.depth の指定を無視します", err)
				valid = false
				break
			}
			depth = append(depth, token)
		}
		if valid {
			policy.DepthStyles = depth
		}
	}

	for ext, name := range v.GetStringMapString("colors.file_types") {
		token, err := model.ParseStyleToken(name)
		if err != nil {
			logger.Log(logging.LevelWarn,
				fmt.Sprintf("colors.file_types の '%s' の指定を無視します", ext), err)
			continue
		}
		policy.FileStyles[normalizeExt(ext)] = token
	}
}

// normalizeExt は拡張子指定を小文字・ドット付きの形に揃えます
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
