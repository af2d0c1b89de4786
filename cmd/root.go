package cmd

import (
	"campportal/internal/bootstrap"
	"campportal/internal/config"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "campportal",
	Short: "Web portal backend for the camp game bot.",
	Long:  `Campportal serves the community web portal: link-code login, player profile, inventory, mail and the public leaderboard, backed by the bot's database.`,
	Run: func(cmd *cobra.Command, args []string) {
		var conf config.Config

		err := viper.Unmarshal(&conf)
		HandleError(err, "Failed to parse config")

		validate := validator.New()
		err = validate.Struct(conf)
		HandleError(err, "Invalid config")

		level, err := zerolog.ParseLevel(conf.LogLevel)
		HandleError(err, "Invalid log level")
		zerolog.SetGlobalLevel(level)

		app := bootstrap.NewBootstrapApp(conf)
		err = app.Setup()
		HandleError(err, "Failed to start portal")
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}

func HandleError(err error, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}

func init() {
	viper.AutomaticEnv()
	rootCmd.Flags().Int("port", 8080, "Port to run the server on.")
	rootCmd.Flags().String("address", "0.0.0.0", "Address to bind the server to.")
	rootCmd.Flags().String("database-path", "data/portal.db", "Path to the sqlite database file.")
	rootCmd.Flags().String("resources-dir", "", "Directory containing the static portal files.")
	rootCmd.Flags().String("bot-key", "", "Shared key the bot uses to mint link codes.")
	rootCmd.Flags().String("catalog-file", "", "Path to a JSON file overriding the built-in item and god catalog.")
	rootCmd.Flags().String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal, panic).")
	rootCmd.Flags().String("trusted-proxies", "", "Comma separated list of trusted proxy addresses.")
	viper.BindEnv("port", "PORT")
	viper.BindEnv("address", "ADDRESS")
	viper.BindEnv("database-path", "DATABASE_PATH")
	viper.BindEnv("resources-dir", "RESOURCES_DIR")
	viper.BindEnv("bot-key", "BOT_KEY")
	viper.BindEnv("catalog-file", "CATALOG_FILE")
	viper.BindEnv("log-level", "LOG_LEVEL")
	viper.BindEnv("trusted-proxies", "TRUSTED_PROXIES")
	viper.BindPFlags(rootCmd.Flags())

	newVersionCmd(rootCmd).Register()
}
