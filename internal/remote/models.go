package remote

import (
	"encoding/json"
	"fmt"

	"notesync/internal/domain"
)

type sessionResponse struct {
	SessionID string `json:"sessionId"`
}

type loginStatusResponse struct {
	Status           bool   `json:"status"`
	Token            string `json:"token"`
	ID               string `json:"id"`
	Name             string `json:"name"`
	Avatar           string `json:"avatar"`
	InvalidSessionID bool   `json:"invalidSessionId"`
}

type checkRequest struct {
	SessionID string `json:"sessionId"`
}

type checkResponse struct {
	Valid           bool `json:"valid"`
	FailedTaskCount int  `json:"failedTaskCount"`
}

type taskListResponse struct {
	Valid  bool       `json:"valid"`
	Limit  int        `json:"limit"`
	Result []taskItem `json:"result"`
}

type taskItem struct {
	ID string `json:"id"`
}

type failureRequest struct {
	Error string `json:"error"`
}

// noteResponse is the content of one task. ID is null once the note is gone.
type noteResponse struct {
	ID                      *string        `json:"id"`
	Title                   string         `json:"title"`
	SuperType               string         `json:"superType"`
	NoteType                string         `json:"noteType"`
	Properties              []noteProperty `json:"properties"`
	Text                    string         `json:"text"`
	Tags                    []string       `json:"tags"`
	RelatedContentTitle     string         `json:"relatedContentTitle"`
	RelatedContentSuperType string         `json:"relatedContentSuperType"`
}

type noteProperty struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func (p noteProperty) toDomain() (domain.Property, error) {
	prop := domain.Property{Key: p.Key}
	if len(p.Value) == 0 || string(p.Value) == "null" {
		return prop, nil
	}

	var many []json.RawMessage
	if err := json.Unmarshal(p.Value, &many); err == nil {
		prop.Multi = true
		prop.Values = make([]string, 0, len(many))
		for _, raw := range many {
			prop.Values = append(prop.Values, scalarString(raw))
		}
		return prop, nil
	}

	var one any
	if err := json.Unmarshal(p.Value, &one); err != nil {
		return prop, fmt.Errorf("decode property %q: %w", p.Key, err)
	}
	prop.Values = []string{scalarString(p.Value)}
	return prop, nil
}

func scalarString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func (n *noteResponse) toDomain() (*domain.NoteContent, error) {
	note := &domain.NoteContent{
		Title:                   n.Title,
		SuperType:               domain.SuperType(n.SuperType),
		NoteType:                domain.NoteType(n.NoteType),
		Text:                    n.Text,
		Tags:                    n.Tags,
		RelatedContentTitle:     n.RelatedContentTitle,
		RelatedContentSuperType: domain.SuperType(n.RelatedContentSuperType),
	}
	if n.ID != nil {
		note.ID = *n.ID
	}

	for _, p := range n.Properties {
		prop, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		note.Properties = append(note.Properties, prop)
	}
	return note, nil
}
