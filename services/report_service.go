package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/store"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

type ReportUploader interface {
	UploadReport(ctx context.Context, pdf []byte, publicID string) (string, error)
}

// ChromeRenderer prints HTML to PDF with a headless Chrome.
type ChromeRenderer struct{}

func (ChromeRenderer) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

type reportData struct {
	StudentName     string
	InterviewerName string
	Role            string
	Company         string
	Date            string
	Average         float64
	Scores          models.FeedbackScores
	Strengths       []string
	Improvements    []string
	Comments        string
	Resources       []models.LearningResource
}

// ReportService turns submitted feedback into a downloadable PDF.
type ReportService struct {
	store    store.Store
	tmpl     *template.Template
	renderer PDFRenderer
	uploader ReportUploader
	timeout  time.Duration
}

func LoadReportTemplate(path string) (*template.Template, error) {
	return template.ParseFiles(path)
}

func NewReportService(s store.Store, tmpl *template.Template, renderer PDFRenderer, uploader ReportUploader) *ReportService {
	return &ReportService{store: s, tmpl: tmpl, renderer: renderer, uploader: uploader, timeout: time.Minute}
}

func (r *ReportService) Enabled() bool {
	return r != nil && r.tmpl != nil && r.renderer != nil && r.uploader != nil
}

func (r *ReportService) RenderHTML(ctx context.Context, f *models.FeedbackReport) (string, error) {
	interview, err := r.store.GetInterview(ctx, f.InterviewID)
	if err != nil {
		return "", fmt.Errorf("interview: %w", err)
	}
	student, err := r.store.GetUser(ctx, f.StudentID)
	if err != nil {
		return "", fmt.Errorf("student: %w", err)
	}
	interviewer, err := r.store.GetUser(ctx, f.InterviewerID)
	if err != nil {
		return "", fmt.Errorf("interviewer: %w", err)
	}

	d := reportData{
		StudentName:     student.FullName,
		InterviewerName: interviewer.FullName,
		Role:            interview.Role,
		Date:            interview.StartTime.Format("January 2, 2006"),
		Average:         AverageScore(f.Scores),
		Scores:          f.Scores,
		Strengths:       f.Strengths,
		Improvements:    f.AreasForImprovement,
		Comments:        f.AdditionalComments,
		Resources:       f.RecommendedResources,
	}
	if interview.CompanyID != nil {
		if c, err := r.store.GetCompany(ctx, *interview.CompanyID); err == nil {
			d.Company = c.Name
		}
	}

	var out bytes.Buffer
	if err := r.tmpl.Execute(&out, d); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Generate renders, prints and uploads the report for one feedback record
// and stores the resulting URL on it.
func (r *ReportService) Generate(ctx context.Context, feedbackID uuid.UUID) (string, error) {
	f, err := r.store.GetFeedback(ctx, feedbackID)
	if err != nil {
		return "", err
	}
	html, err := r.RenderHTML(ctx, f)
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	pdf, err := r.renderer.RenderPDF(ctx, html)
	if err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}
	url, err := r.uploader.UploadReport(ctx, pdf, fmt.Sprintf("%s_%s", f.StudentID, f.ID))
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	if err := r.store.SetFeedbackReportURL(ctx, f.ID, url); err != nil {
		return "", err
	}
	return url, nil
}

// GenerateAsync runs Generate in the background. Failures are only logged;
// the feedback itself is already saved.
func (r *ReportService) GenerateAsync(feedbackID uuid.UUID) {
	if !r.Enabled() {
		log.Printf("⚠️ Report generation not configured, skipping feedback %s", feedbackID)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		url, err := r.Generate(ctx, feedbackID)
		if err != nil {
			log.Printf("🔥 Failed to generate feedback report %s: %v", feedbackID, err)
			return
		}
		log.Printf("✅ Feedback report %s uploaded to %s", feedbackID, url)
	}()
}
