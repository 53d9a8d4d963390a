package server

import (
	"encoding/json"
	"time"

	"github.com/lox/preflopcharts/internal/app"
	"github.com/lox/preflopcharts/internal/chart"
	"github.com/lox/preflopcharts/internal/handrange"
)

// MessageType identifies a server to client websocket message
type MessageType string

const (
	MessageTypeView  MessageType = "view"
	MessageTypeError MessageType = "error"
)

func (t MessageType) String() string {
	return string(t)
}

// Message represents the base websocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the given timestamp
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

// Client → Server Messages

// Selection asks for the view of one seat. An empty position selects the
// first seat; a missing show_percentage defaults to true.
type Selection struct {
	Players        int    `json:"players"`
	Position       string `json:"position,omitempty"`
	Compact        bool   `json:"compact,omitempty"`
	ShowPercentage *bool  `json:"show_percentage,omitempty"`
}

// State resolves the selection against a chart
func (s Selection) State(c *chart.Chart) (app.State, error) {
	st, err := app.Select(c, s.Players, s.Position)
	if err != nil {
		return app.State{}, err
	}
	st.Compact = s.Compact
	if s.ShowPercentage != nil {
		st.ShowPercentage = *s.ShowPercentage
	}
	return st, nil
}

// Server → Client Messages

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CellData struct {
	Label string `json:"label"`
	Play  bool   `json:"play"`
}

type StatsData struct {
	Hands         int     `json:"hands"`
	UniqueHands   int     `json:"unique_hands"`
	Combos        int     `json:"combos"`
	Percent       float64 `json:"percent"`
	UniquePercent float64 `json:"unique_percent"`
	ComboPercent  float64 `json:"combo_percent"`
}

// ViewData is the JSON form of one selection's view
type ViewData struct {
	Players        int          `json:"players"`
	Position       string       `json:"position"`
	Compact        bool         `json:"compact"`
	ShowPercentage bool         `json:"show_percentage"`
	Tokens         []string     `json:"tokens"`
	Note           string       `json:"note,omitempty"`
	Cells          [][]CellData `json:"cells"`
	Stats          StatsData    `json:"stats"`
}

// ViewDataFrom converts a computed view to its JSON form
func ViewDataFrom(v app.View) ViewData {
	tokens := v.Tokens
	if tokens == nil {
		tokens = []string{}
	}

	rows := v.Matrix.Rows()
	cells := make([][]CellData, len(rows))
	for i, row := range rows {
		cells[i] = make([]CellData, len(row))
		for j, cell := range row {
			cells[i][j] = CellData{Label: cell.Label, Play: cell.Play}
		}
	}

	s := v.Stats()
	return ViewData{
		Players:        v.State.Players,
		Position:       v.State.Position,
		Compact:        v.State.Compact,
		ShowPercentage: v.State.ShowPercentage,
		Tokens:         tokens,
		Note:           v.Note,
		Cells:          cells,
		Stats: StatsData{
			Hands:         s.TokenHandCount,
			UniqueHands:   s.UniqueHands,
			Combos:        s.Combos,
			Percent:       s.Percent(),
			UniquePercent: s.UniquePercent(),
			ComboPercent:  s.ComboPercent(),
		},
	}
}

// TableInfo lists the seats at one table size
type TableInfo struct {
	Players   int      `json:"players"`
	Positions []string `json:"positions"`
}

// ExpandData is the result of expanding range notation
type ExpandData struct {
	Token  string   `json:"token"`
	Hands  []string `json:"hands"`
	Combos int      `json:"combos"`
}

func expandData(notation string) (ExpandData, error) {
	tokens, err := handrange.ParseRange(notation)
	if err != nil {
		return ExpandData{}, err
	}
	set := handrange.NewHandSet()
	for _, token := range tokens {
		hands, err := handrange.Expand(token)
		if err != nil {
			return ExpandData{}, err
		}
		set.Union(hands)
	}
	return ExpandData{
		Token:  notation,
		Hands:  set.Labels(),
		Combos: set.Combos(),
	}, nil
}
