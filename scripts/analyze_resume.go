package main

import (
	"context"
	"flag"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	role := flag.String("role", string(models.DefaultJobRole), "job role to analyze the resume for")
	question := flag.String("ask", "", "optional follow-up question about the resume")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("❌ Usage: analyze_resume [-role ROLE] [-ask QUESTION] <resume.pdf>")
	}
	path := flag.Arg(0)

	log.Println("🚀 Starting resume analysis...")

	// Load configuration
	cfg := config.Load()

	// Initialize services
	contract, err := services.NewAnalysisContract(
		cfg.Analyzer.Contract,
		cfg.Analyzer.BaseURL,
		cfg.Analyzer.Timeout,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize analyzer contract: %v", err)
	}
	session := services.NewSessionController(
		uuid.New(),
		contract,
		services.NewChatService(cfg.Analyzer.BaseURL, cfg.Analyzer.Timeout),
		services.NewUploadValidator(contract.Kind(), cfg.Upload.MaxFileSize),
		nil,
	)

	if err := session.SelectJobRole(*role); err != nil {
		log.Fatalf("❌ Invalid job role %q, expected one of: %s", *role, joinRoles())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌ Failed to read %s: %v", path, err)
	}
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}

	log.Printf("📄 Processing: %s", path)
	log.Printf("   Role: %s", *role)
	log.Printf("   Contract: %s", contract.Kind())

	ctx := context.Background()
	if err := session.SubmitResume(ctx, []models.ResumeFile{{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}}); err != nil {
		log.Fatalf("❌ Failed to submit resume: %v", err)
	}

	view := models.Project(session.State(), contract.Kind())
	if view.Notice != nil {
		log.Fatalf("❌ %s", view.Notice.Message)
	}
	printResult(view)

	if strings.TrimSpace(*question) == "" {
		return
	}
	if !view.ChatEnabled {
		log.Printf("⚠️  Chat is not available for the %s contract", contract.Kind())
		return
	}

	log.Printf("\n💬 You: %s", *question)
	reply, err := ask(ctx, session, *question)
	if reply != "" {
		log.Printf("🤖 %s", reply)
	}
	if err != nil {
		log.Printf("❌ Chat request failed: %v", err)
		os.Exit(1)
	}
}

// ask sends one chat message and returns the assistant entry it produced,
// which on failure is the fallback text shown to the user.
func ask(ctx context.Context, session services.SessionController, question string) (string, error) {
	err := session.SendChatMessage(ctx, question)
	transcript := session.State().ChatTranscript
	if n := len(transcript); n > 0 && !transcript[n-1].IsUser {
		return transcript[n-1].Content, err
	}
	return "", err
}

func printResult(view models.PageView) {
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Resume Analysis Result")
	if view.ScoreLine != "" {
		log.Printf("   %s", view.ScoreLine)
	}
	if view.Feedback != "" {
		log.Printf("   Feedback:\n%s", view.Feedback)
	}
	if len(view.Skills) > 0 {
		log.Printf("   Skills: %s", strings.Join(view.Skills, ", "))
	}
	if view.Enhanced != "" {
		log.Printf("   Enhanced:\n%s", view.Enhanced)
	}
	log.Println(strings.Repeat("=", 60))
}

func joinRoles() string {
	roles := models.JobRoles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
