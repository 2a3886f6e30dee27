package summarize

import (
	"context"
	"fmt"
	"testing"

	"yt-brief/errors"
	"yt-brief/models"
	"yt-brief/ollama"
	"yt-brief/validation"
	"yt-brief/youtube"
)

type fakeTranscripts struct {
	fragments []youtube.Fragment
	err       error
	calls     int
}

func (f *fakeTranscripts) Fetch(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.fragments, nil
}

type fakeTitles struct {
	title string
	ok    bool
	calls int
}

func (f *fakeTitles) Resolve(ctx context.Context, videoID string) (string, bool) {
	f.calls++
	if !f.ok {
		return videoID, false
	}
	return f.title, true
}

type fakeChat struct {
	models     []models.ModelInfo
	listErr    error
	reply      string
	chatErr    error
	chatCalls  int
	lastModel  string
	lastSystem string
	lastUser   string
}

func (f *fakeChat) List(ctx context.Context) ([]models.ModelInfo, error) {
	return f.models, f.listErr
}

func (f *fakeChat) Chat(ctx context.Context, model string, messages []ollama.Message) (string, error) {
	f.chatCalls++
	f.lastModel = model
	for _, m := range messages {
		switch m.Role {
		case "system":
			f.lastSystem = m.Content
		case "user":
			f.lastUser = m.Content
		}
	}
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.reply, nil
}

func newTestService(transcripts *fakeTranscripts, titles *fakeTitles, chat *fakeChat) Service {
	return NewService(transcripts, titles, chat, validation.NewValidator())
}

func TestSummarizeHappyPath(t *testing.T) {
	transcripts := &fakeTranscripts{fragments: []youtube.Fragment{{Text: "Hello "}, {Text: "world"}}}
	titles := &fakeTitles{title: "Some Video", ok: true}
	chat := &fakeChat{reply: "The video greets the world."}

	svc := newTestService(transcripts, titles, chat)

	summary, err := svc.Summarize(context.Background(), models.SummarizeRequest{
		URL:   "https://youtu.be/ABC123",
		Model: "llama3.2",
		Tone:  models.ToneProfessional,
	})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.VideoID != "ABC123" {
		t.Errorf("expected video ID ABC123, got %s", summary.VideoID)
	}
	if summary.Transcript != "Hello \nworld\n" {
		t.Errorf("Transcript = %q, want %q", summary.Transcript, "Hello \nworld\n")
	}
	if summary.Title != "Some Video" {
		t.Errorf("Title = %q, want %q", summary.Title, "Some Video")
	}
	if !summary.IsCompleted() {
		t.Errorf("expected completed status, got %s", summary.Status)
	}
	if summary.Summary != "The video greets the world." {
		t.Errorf("unexpected summary: %q", summary.Summary)
	}
	if summary.Warning != "" {
		t.Errorf("unexpected warning: %q", summary.Warning)
	}

	if chat.lastModel != "llama3.2" {
		t.Errorf("expected model llama3.2, got %s", chat.lastModel)
	}
	if chat.lastSystem != DefaultPrompt(models.ToneProfessional) {
		t.Errorf("expected the default professional prompt, got %q", chat.lastSystem)
	}
	if chat.lastUser != "Transcript: Hello \nworld\n" {
		t.Errorf("unexpected user message: %q", chat.lastUser)
	}
}

func TestSummarizeInvalidURLMakesNoCalls(t *testing.T) {
	transcripts := &fakeTranscripts{}
	titles := &fakeTitles{}
	chat := &fakeChat{}

	svc := newTestService(transcripts, titles, chat)

	_, err := svc.Summarize(context.Background(), models.SummarizeRequest{
		URL:   "not-a-url",
		Model: "llama3.2",
	})
	if err == nil {
		t.Fatal("expected error for unrecognized URL")
	}
	if !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid input error, got %v", err)
	}

	if transcripts.calls != 0 || titles.calls != 0 || chat.chatCalls != 0 {
		t.Error("expected no network stage to run after a parse failure")
	}
}

func TestSummarizeMissingModel(t *testing.T) {
	svc := newTestService(&fakeTranscripts{}, &fakeTitles{}, &fakeChat{})

	_, err := svc.Summarize(context.Background(), models.SummarizeRequest{
		URL: "https://youtu.be/ABC123",
	})
	if !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestSummarizeTranscriptFailureSkipsChat(t *testing.T) {
	transcripts := &fakeTranscripts{
		err: errors.Upstream("TranscriptClient.Fetch", fmt.Errorf("captions disabled"), "Transcript unavailable"),
	}
	chat := &fakeChat{reply: "should not happen"}

	svc := newTestService(transcripts, &fakeTitles{title: "Some Video", ok: true}, chat)

	_, err := svc.Summarize(context.Background(), models.SummarizeRequest{
		URL:   "https://youtu.be/ABC123",
		Model: "llama3.2",
	})
	if err == nil {
		t.Fatal("expected error when the transcript fetch fails")
	}
	if !errors.IsUpstream(err) {
		t.Errorf("expected upstream error, got %v", err)
	}
	if chat.chatCalls != 0 {
		t.Error("expected the summarize stage to be skipped")
	}
}

func TestSummarizeChatFailureKeepsTranscript(t *testing.T) {
	transcripts := &fakeTranscripts{fragments: []youtube.Fragment{{Text: "Hello "}, {Text: "world"}}}
	chat := &fakeChat{
		chatErr: errors.Upstream("ollama.Client.Chat", nil, "Empty response from AI model"),
	}

	svc := newTestService(transcripts, &fakeTitles{title: "Some Video", ok: true}, chat)

	summary, err := svc.Summarize(context.Background(), models.SummarizeRequest{
		URL:   "https://youtu.be/ABC123",
		Model: "llama3.2",
	})
	if err != nil {
		t.Fatalf("Summarize() error = %v, want the failure on the result", err)
	}

	if !summary.IsFailed() {
		t.Errorf("expected failed status, got %s", summary.Status)
	}
	if summary.Transcript != "Hello \nworld\n" {
		t.Errorf("expected transcript to survive a summary failure, got %q", summary.Transcript)
	}
	if summary.Error == "" {
		t.Error("expected the failure reason on the result")
	}
	if summary.Summary != "" {
		t.Errorf("unexpected summary content: %q", summary.Summary)
	}
}

func TestSummarizeTitleFallbackWarns(t *testing.T) {
	transcripts := &fakeTranscripts{fragments: []youtube.Fragment{{Text: "hi"}}}
	chat := &fakeChat{reply: "The video says hi."}

	svc := newTestService(transcripts, &fakeTitles{ok: false}, chat)

	summary, err := svc.Summarize(context.Background(), models.SummarizeRequest{
		URL:   "https://youtu.be/ABC123",
		Model: "llama3.2",
	})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.Title != "ABC123" {
		t.Errorf("expected title fallback to the video ID, got %q", summary.Title)
	}
	if summary.Warning == "" {
		t.Error("expected a non-blocking warning for the title fallback")
	}
	if !summary.IsCompleted() {
		t.Errorf("expected title fallback not to fail the run, got status %s", summary.Status)
	}
}

func TestSummarizePromptOverridePassedVerbatim(t *testing.T) {
	transcripts := &fakeTranscripts{fragments: []youtube.Fragment{{Text: "hi"}}}
	chat := &fakeChat{reply: "ok"}

	svc := newTestService(transcripts, &fakeTitles{title: "T", ok: true}, chat)

	override := "Reply only with emoji."
	_, err := svc.Summarize(context.Background(), models.SummarizeRequest{
		URL:    "https://youtu.be/ABC123",
		Model:  "llama3.2",
		Tone:   models.ToneGenZ,
		Prompt: override,
	})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if chat.lastSystem != override {
		t.Errorf("expected the override as system prompt, got %q", chat.lastSystem)
	}
}

func TestModels(t *testing.T) {
	chat := &fakeChat{models: []models.ModelInfo{{Name: "llama3.2"}}}
	svc := newTestService(&fakeTranscripts{}, &fakeTitles{}, chat)

	list, err := svc.Models(context.Background())
	if err != nil {
		t.Fatalf("Models() error = %v", err)
	}
	if len(list) != 1 || list[0].Name != "llama3.2" {
		t.Errorf("unexpected model list: %+v", list)
	}
}

func TestModelsListingFailure(t *testing.T) {
	chat := &fakeChat{listErr: errors.Unavailable("ollama.Client.List", nil, "Could not reach the Ollama server")}
	svc := newTestService(&fakeTranscripts{}, &fakeTitles{}, chat)

	_, err := svc.Models(context.Background())
	if !errors.IsUnavailable(err) {
		t.Errorf("expected unavailable error, got %v", err)
	}
}
