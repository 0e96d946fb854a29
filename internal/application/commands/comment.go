package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"verge/internal/application"
	"verge/internal/domain"
	"verge/internal/ports"
)

// CommentDateLayout is the day-first short date shown on comments
const CommentDateLayout = "2/1/2006"

// AddCommentResult contains the result of adding a comment
type AddCommentResult struct {
	Garden  *domain.Garden
	Comment *domain.Comment // nil when nothing was added
	Added   bool
	Message string
}

// AddCommentCommand prepends an observation to a garden's comments
type AddCommentCommand struct {
	catalog  *application.Catalog
	authors  ports.AuthorResolver
	now      func() time.Time
	GardenID string
	Content  string
}

// NewAddCommentCommand creates a new AddCommentCommand
func NewAddCommentCommand(catalog *application.Catalog, authors ports.AuthorResolver, gardenID, content string) *AddCommentCommand {
	return &AddCommentCommand{
		catalog:  catalog,
		authors:  authors,
		now:      time.Now,
		GardenID: gardenID,
		Content:  content,
	}
}

// WithClock overrides the clock used to date the comment
func (c *AddCommentCommand) WithClock(now func() time.Time) *AddCommentCommand {
	c.now = now
	return c
}

// Validate checks that a garden ID was given. Empty content is not an error.
func (c *AddCommentCommand) Validate() error {
	return application.ValidateRequired("gardenID", c.GardenID)
}

// Execute runs the add comment command. Content that is empty after trimming
// leaves the comments unchanged.
func (c *AddCommentCommand) Execute(ctx context.Context) (*AddCommentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(c.Content)
	if content == "" {
		g, err := c.catalog.Get(c.GardenID)
		if err != nil {
			return nil, err
		}
		return &AddCommentResult{
			Garden:  &g,
			Message: "Nothing to add",
		}, nil
	}

	comment := domain.Comment{
		ID:      uuid.NewString(),
		Author:  c.authors.Resolve(),
		Date:    c.now().Format(CommentDateLayout),
		Content: content,
		Type:    domain.CommentObservation,
	}

	g, err := c.catalog.PrependComment(c.GardenID, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return &AddCommentResult{
		Garden:  &g,
		Comment: &comment,
		Added:   true,
		Message: fmt.Sprintf("Comment added to %s by %s", g.Name, comment.Author),
	}, nil
}
