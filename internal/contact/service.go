package contact

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/buildsetu/buildsetu-backend/pkg/config"
	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
)

// SubmitRequest is the contact form payload appended to the spreadsheet.
type SubmitRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// SheetAppender abstracts the spreadsheet write for tests.
type SheetAppender interface {
	Append(ctx context.Context, values []any) error
}

// Service forwards contact submissions to a Google Sheet.
type Service struct {
	appender SheetAppender
}

// NewService builds the contact service.
func NewService(appender SheetAppender) (*Service, error) {
	if appender == nil {
		return nil, fmt.Errorf("sheet appender is required")
	}
	return &Service{appender: appender}, nil
}

// Submit validates the form and appends one spreadsheet row.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) error {
	fields := map[string]string{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
		"phone":      req.Phone,
		"message":    req.Message,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s is required", name))
		}
	}

	row := []any{req.FirstName, req.LastName, req.Email, req.Phone, req.Message}
	if err := s.appender.Append(ctx, row); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append contact row")
	}
	return nil
}

// NewDisabledAppender stands in when no spreadsheet is configured. Every
// append fails so submissions surface a dependency error instead of vanishing.
func NewDisabledAppender() SheetAppender {
	return disabledAppender{}
}

type disabledAppender struct{}

func (disabledAppender) Append(ctx context.Context, values []any) error {
	return fmt.Errorf("contact sheet is not configured")
}

// sheetsAppender writes rows through the Sheets API.
type sheetsAppender struct {
	svc *sheets.Service
	cfg config.SheetsConfig
}

// NewSheetsAppender builds the production appender from service-account
// credentials.
func NewSheetsAppender(ctx context.Context, cfg config.SheetsConfig) (SheetAppender, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("building sheets client: %w", err)
	}
	return &sheetsAppender{svc: svc, cfg: cfg}, nil
}

func (a *sheetsAppender) Append(ctx context.Context, values []any) error {
	body := &sheets.ValueRange{Values: [][]any{values}}
	_, err := a.svc.Spreadsheets.Values.
		Append(a.cfg.SpreadsheetID, a.cfg.Range, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}
