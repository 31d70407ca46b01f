package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/mwangiben/skill_share/configs"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
)

// CheckAndGenerateCertificate issues a completion certificate to the learner
// the first time they complete an exchange for a given skill. Called
// fire-and-forget after the teacher marks an exchange completed; failures
// only log, the completion itself already persisted.
func CheckAndGenerateCertificate(exchange models.Exchange) {
	var existing models.Certificate
	err := database.DB.
		Where("learner_id = ? AND skill_id = ?", exchange.LearnerID, exchange.SkillID).
		First(&existing).Error
	if err == nil {
		return
	}

	htmlData, err := generateCertificateHTML(exchange.Learner.Name, exchange.Teacher.Name, exchange.Skill.Title)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, exchange.LearnerID)
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	cert := models.Certificate{
		LearnerID:      exchange.LearnerID,
		SkillID:        exchange.SkillID,
		TeacherID:      exchange.TeacherID,
		SkillTitle:     exchange.Skill.Title,
		CompletionDate: time.Now(),
		CertificateURL: uploadURL,
	}

	if err := database.DB.Create(&cert).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for learner %d: %v", exchange.LearnerID, err)
	} else {
		log.Printf("✅ Generated certificate for learner %d, skill '%s'", exchange.LearnerID, exchange.Skill.Title)
	}
}

func generateCertificateHTML(learnerName, teacherName, skillTitle string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		LearnerName    string
		TeacherName    string
		SkillTitle     string
		CompletionDate string
	}{
		LearnerName:    learnerName,
		TeacherName:    teacherName,
		SkillTitle:     skillTitle,
		CompletionDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
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

func uploadToCloudinary(fileBytes []byte, learnerID uint) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%d_%s", learnerID, uuid.New().String()),
		Folder:       "skill_share_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
