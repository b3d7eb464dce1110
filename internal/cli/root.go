package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuzu875641/phpbbs/internal/api/handler"
	"github.com/yuzu875641/phpbbs/internal/core/service"
	"github.com/yuzu875641/phpbbs/internal/infrastructure/postgrest"
	"github.com/yuzu875641/phpbbs/pkg/config"
	"github.com/yuzu875641/phpbbs/pkg/log"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bbs",
	Short: "bbs - pseudonymous realtime bulletin board",
	Long: `bbs serves a minimal realtime bulletin board.

Visitors post short messages under a pseudonymous handle derived from a
seed value, and any visitor can change the shared topic with an inline
/topic command or wipe the board with /clear. Posts, users and the topic
live in an external REST resource store; this process holds no state of
its own.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log.Init(log.Config{Level: cfg.LogLevel, JSONOutput: cfg.LogJSON})
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/bbs/config.yml)")
}

// Services holds everything the server needs
type Services struct {
	BoardHandler *handler.BoardHandler
}

// initServices wires the store client, repositories and services together
func initServices() *Services {
	store := postgrest.NewClient(cfg, log.WithComponent("store"))

	users := postgrest.NewUserRepository(store)
	posts := postgrest.NewPostRepository(store)
	topics := postgrest.NewTopicRepository(store)

	board := service.NewBoardService(users, posts, topics, log.WithComponent("board"))
	prefs := service.NewPreferenceService()

	return &Services{
		BoardHandler: handler.NewBoardHandler(board, prefs, log.WithComponent("api")),
	}
}
