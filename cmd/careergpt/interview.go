package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/careergpt/internal/extraction"
	"github.com/jonathan/careergpt/internal/ingestion"
	"github.com/jonathan/careergpt/internal/interview"
	"github.com/jonathan/careergpt/internal/llm"
	"github.com/jonathan/careergpt/internal/roles"
	"github.com/jonathan/careergpt/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive mock interview",
	Long:  "Run a mock interview in the terminal. Questions are grounded in the supplied resume; without one the interviewer asks for an upload. Type 'quit' to end the session.",
	RunE:  runInterview,
}

var (
	interviewResume string
	interviewType   string
	interviewRole   string
	interviewBanks  string
	interviewAPIKey string
)

func init() {
	interviewCmd.Flags().StringVar(&interviewResume, "resume", "", "Path to a resume file (PDF, DOCX, HTML, or text)")
	interviewCmd.Flags().StringVar(&interviewType, "type", "screening", "Interview type: screening, technical, behavioral, system-design, cultural-fit")
	interviewCmd.Flags().StringVar(&interviewRole, "role", "", "Target role (inferred from the resume when omitted)")
	interviewCmd.Flags().StringVar(&interviewBanks, "banks", "", "Path to a custom question banks JSON file")
	interviewCmd.Flags().StringVar(&interviewAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	var profile *types.ResumeProfile
	if interviewResume != "" {
		text, err := ingestion.DecodeFile(interviewResume)
		if err != nil {
			return fmt.Errorf("failed to decode resume: %w", err)
		}
		profile = extraction.Extract(ingestion.CleanText(text))
		fmt.Println(extraction.Summary(profile))
	}

	role := interviewRole
	if role == "" && profile != nil {
		inference := roles.Infer(profile)
		role = inference.Role
		fmt.Printf("Interviewing for: %s\n", role)
	}

	banks := interview.DefaultBanks()
	if interviewBanks != "" {
		loaded, err := interview.LoadBanks(interviewBanks)
		if err != nil {
			return err
		}
		banks = loaded
	}
	selector := interview.NewSelector(banks, nil)

	apiKey := interviewAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	var client llm.Client
	if apiKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, apiKey, "")
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer geminiClient.Close()
		client = geminiClient
	}
	interviewer := llm.NewInterviewer(client, selector)

	itype := types.ParseInterviewType(interviewType)
	fmt.Printf("Starting a %s interview. Type 'quit' to end.\n\n", itype)

	var history []types.Message
	latest := ""
	scanner := bufio.NewScanner(os.Stdin)

	for {
		turn := &types.TurnContext{
			Role:              role,
			InterviewType:     itype,
			History:           history,
			LatestUserMessage: latest,
			Profile:           profile,
		}
		utterance := interviewer.NextUtterance(ctx, turn)
		fmt.Printf("Interviewer: %s\n\n> ", utterance)
		history = append(history, types.Message{Speaker: types.SpeakerInterviewer, Text: utterance})

		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		latest = strings.TrimSpace(scanner.Text())
		if strings.EqualFold(latest, "quit") || strings.EqualFold(latest, "exit") {
			fmt.Println("Good luck with the real thing!")
			return nil
		}
		history = append(history, types.Message{Speaker: types.SpeakerUser, Text: latest})
	}
}
