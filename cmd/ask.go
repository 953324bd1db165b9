package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freshnutrients/agrichat/internal/advisor"
	"github.com/freshnutrients/agrichat/internal/db"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a farming question from the command line",
	Long:  `Runs a single question through the full recommendation pipeline: context extraction, catalog resolution and the LLM response.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().String("conversation", "", "conversation ID to continue an earlier exchange")
	askCmd.Flags().Bool("json", false, "output the full reply as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conversationID, _ := cmd.Flags().GetString("conversation")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	engine := buildEngine(database, provider, cfg.Model)

	reply := engine.Respond(context.Background(), advisor.Request{
		ConversationID: conversationID,
		Message:        args[0],
	})

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reply)
	}

	fmt.Println(reply.Response)
	fmt.Fprintf(os.Stderr, "\nconversation: %s  products: %d  status: %s\n",
		reply.ConversationID, len(reply.Products), reply.Status)
	return nil
}
