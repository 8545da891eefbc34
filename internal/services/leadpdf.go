package services

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"karthika_back_end/internal/models"
)

// RenderQuotePDF prints an admin-facing summary of a quote request to PDF
// through headless Chrome.
func RenderQuotePDF(req models.QuoteRequest) ([]byte, error) {
	rows := [][2]string{
		{"Reference", req.ID.String()},
		{"Name", req.Name},
		{"Email", req.Email},
		{"Phone", req.Phone},
		{"City", req.City},
		{"Property type", req.PropertyType},
		{"Cameras", req.NumCameras},
		{"Requirements", req.Requirements},
		{"Status", req.Status},
		{"Notes", req.Notes},
		{"Received", req.CreatedAt.Format("02 Jan 2006 15:04")},
	}
	return renderLeadPDF("Quote Request", rows)
}

// RenderInstallationPDF prints an installation request summary to PDF.
func RenderInstallationPDF(req models.InstallationRequest) ([]byte, error) {
	rows := [][2]string{
		{"Reference", req.ID.String()},
		{"Name", req.Name},
		{"Phone", req.Phone},
		{"Email", req.Email},
		{"PIN code", req.Pincode},
		{"Cameras", fmt.Sprintf("%d", req.Cameras)},
		{"Message", req.Message},
		{"Status", req.Status},
		{"Notes", req.Notes},
		{"Received", req.CreatedAt.Format("02 Jan 2006 15:04")},
	}
	return renderLeadPDF("Installation Request", rows)
}

func renderLeadPDF(title string, rows [][2]string) ([]byte, error) {
	var b strings.Builder
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(&b,
			`<tr><td style="padding:8px;border:1px solid #ddd;font-weight:bold;width:30%%">%s</td>`+
				`<td style="padding:8px;border:1px solid #ddd">%s</td></tr>`,
			html.EscapeString(row[0]), html.EscapeString(row[1]))
	}

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>%s</title></head>
<body style="font-family: Arial, sans-serif; padding: 30px;">
	<h1 style="color:#1a2b4c">Karthika Secure Shop</h1>
	<h2>%s</h2>
	<table style="width:100%%;border-collapse:collapse">%s</table>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), b.String())

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(doc)),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
