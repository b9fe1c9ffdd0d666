package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/adreel-cli/adreel/color"
	"github.com/adreel-cli/adreel/config"
	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/icon"
	"github.com/adreel-cli/adreel/key"
	"github.com/adreel-cli/adreel/player"
	"github.com/adreel-cli/adreel/style"
	"github.com/adreel-cli/adreel/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// choices restricts string keys to a closed set of values.
var choices = map[string]func() []string{
	key.Player:       player.Names,
	key.IconsVariant: icon.AvailableVariants,
	key.LogsLevel: func() []string {
		return []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}
	},
}

func errUnknownKey(k string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Keys(config.Default)
	sort.Strings(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func configFile() string {
	return filepath.Join(where.Config(), constant.Adreel+".toml")
}

// persist writes the in-memory config, creating the file on first use.
func persist() error {
	err := viper.WriteConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return viper.SafeWriteConfigAs(configFile())
	}
	return err
}

// fieldFor looks up a registered field, exiting with a suggestion otherwise.
func fieldFor(k string) config.Field {
	field, ok := config.Default[k]
	if !ok {
		handleErr(errUnknownKey(k))
	}
	return field
}

// parseValue converts raw command-line values to the type of the field's default.
func parseValue(field config.Field, raw []string) (any, error) {
	switch field.Value.(type) {
	case string:
		v := raw[0]
		if allowed, ok := choices[field.Key]; ok && !lo.Contains(allowed(), v) {
			return nil, fmt.Errorf("invalid value %q for %s, expected one of: %s", v, field.Key, strings.Join(allowed(), ", "))
		}
		return v, nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type for %s", field.Key)
	}
}

// keyArg takes the key from the first argument or the --key flag.
func keyArg(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	if k := lo.Must(cmd.Flags().GetString("key")); k != "" {
		return k
	}

	handleErr(errors.New("key is required as an argument or --key flag"))
	return ""
}

func success(format string, a ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		fields := lo.Values(config.Default)
		if len(keys) > 0 {
			fields = lo.Map(keys, func(k string, _ int) config.Field { return fieldFor(k) })
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		blocks := lo.Map(fields, func(f config.Field, _ int) string { return f.Pretty() })
		cmd.Println(strings.Join(blocks, "\n\n"))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "Key to change")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "New value")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Change a setting and write it to the config file",
	Example:           "  adreel config set player.default vlc\n  adreel config set player.autoadvance true",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := fieldFor(keyArg(cmd, args))

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}
		if len(raw) == 0 {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		v, err := parseValue(field, raw)
		handleErr(err)

		viper.Set(field.Key, v)
		handleErr(persist())

		success("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "Key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a setting",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := fieldFor(keyArg(cmd, args))
		fmt.Println(viper.Get(field.Key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			exists, err := filesystem.API().Exists(path)
			handleErr(err)
			if exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfigAs(path))
		success("wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		success("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "Key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore settings to their defaults",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(persist())
			success("reset all config values")
			return
		}

		field := fieldFor(lo.Must(cmd.Flags().GetString("key")))
		viper.Set(field.Key, field.Value)
		handleErr(persist())

		success(
			"reset %s to default value %s",
			style.Fg(color.Purple)(field.Key),
			style.Fg(color.Yellow)(fmt.Sprint(field.Value)),
		)
	},
}
