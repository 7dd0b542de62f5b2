package cli

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomestack/tome/internal/core/domain"
)

var (
	addTitle string
	addMIME  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a source to a notebook",
	Long:  `Ingest pasted text, a web page, a YouTube link, or a local file into a notebook.`,
}

var addTextCmd = &cobra.Command{
	Use:   "text [notebook-id] [text]",
	Short: "Add pasted text",
	Long: `Adds raw text to the notebook verbatim.
When the text argument is omitted, it is read from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAddText,
}

var addURLCmd = &cobra.Command{
	Use:   "url [notebook-id] [url]",
	Short: "Add a web page",
	Long:  `Fetches the page, strips it to plain text, and adds it to the notebook.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runAddURL,
}

var addYouTubeCmd = &cobra.Command{
	Use:   "youtube [notebook-id] [url]",
	Short: "Add a YouTube video reference",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddYouTube,
}

var addFileCmd = &cobra.Command{
	Use:   "file [notebook-id] [path]",
	Short: "Add a local file",
	Long: `Reads the file and adds it to the notebook. The source type (pdf,
audio, image) is derived from the MIME type, which is inferred from the
file extension unless overridden with --mime.`,
	Args: cobra.ExactArgs(2),
	RunE: runAddFile,
}

func init() {
	addCmd.PersistentFlags().StringVarP(&addTitle, "title", "t", "", "title for the new source (defaults per type)")
	addFileCmd.Flags().StringVar(&addMIME, "mime", "", "MIME type of the file (inferred from extension when empty)")

	addCmd.AddCommand(addTextCmd)
	addCmd.AddCommand(addURLCmd)
	addCmd.AddCommand(addYouTubeCmd)
	addCmd.AddCommand(addFileCmd)
	rootCmd.AddCommand(addCmd)
}

func runAddText(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	var text string
	if len(args) == 2 {
		text = args[1]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read text from stdin: %w", err)
		}
		text = string(data)
	}

	source, err := notebookService.AddSource(cmd.Context(), args[0], domain.NewPastedTextRequest(text, addTitle))
	if err != nil {
		return fmt.Errorf("failed to add text: %w", err)
	}

	printAddedSource(cmd, source)
	return nil
}

func runAddURL(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	source, err := notebookService.AddSource(cmd.Context(), args[0], domain.NewWebsiteRequest(args[1], addTitle))
	if err != nil {
		return fmt.Errorf("failed to add web page: %w", err)
	}

	printAddedSource(cmd, source)
	return nil
}

func runAddYouTube(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	source, err := notebookService.AddSource(cmd.Context(), args[0], domain.NewYouTubeRequest(args[1], addTitle))
	if err != nil {
		return fmt.Errorf("failed to add video: %w", err)
	}

	printAddedSource(cmd, source)
	return nil
}

func runAddFile(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	path := args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	mimeType := addMIME
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(path))
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	upload := &domain.FileUpload{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Data:     data,
	}

	source, err := notebookService.AddSource(cmd.Context(), args[0], domain.NewFileRequest(sourceTypeForMIME(mimeType), upload, addTitle))
	if err != nil {
		return fmt.Errorf("failed to add file: %w", err)
	}

	printAddedSource(cmd, source)
	return nil
}

// sourceTypeForMIME maps a MIME type onto a file-backed source type.
// Anything that is not a PDF, audio or image lands on the pdf path,
// whose transcriber chain handles text and unknown formats.
func sourceTypeForMIME(mimeType string) domain.SourceType {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	switch {
	case strings.HasPrefix(mimeType, "audio/"):
		return domain.SourceAudio
	case strings.HasPrefix(mimeType, "image/"):
		return domain.SourceImage
	default:
		return domain.SourcePDF
	}
}

func printAddedSource(cmd *cobra.Command, source *domain.Source) {
	cmd.Printf("Added source %s\n", source.ID)
	cmd.Printf("  Type:  %s\n", source.Type.Label())
	cmd.Printf("  Title: %s\n", source.Title)
}
