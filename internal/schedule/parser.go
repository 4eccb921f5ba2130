package schedule

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Parser turns syllabus text into week entries. It carries configuration only;
// every call to Process or Parse starts from fresh state.
type Parser struct {
	now    func() time.Time
	logger *slog.Logger
}

// Option customises a Parser.
type Option func(*Parser)

// WithClock overrides the wall clock used for the default base date and the
// current-week check.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger routes per-line debug output to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser returns a parser using the real clock and a discarding logger unless overridden.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process parses lines with a default Parser.
func Process(lines []string) ([]Week, error) {
	return NewParser().Process(lines)
}

// Parse scans r line by line and processes the result.
func (p *Parser) Parse(r io.Reader) ([]Week, error) {
	if r == nil {
		return nil, nil
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read syllabus: %w", err)
	}
	return p.Process(lines)
}

// Process runs the directive state machine over lines in order. Any syntax
// error aborts the call and no entries are returned.
func (p *Parser) Process(lines []string) ([]Week, error) {
	state := parseState{baseDate: DayOf(p.now())}

	for i, raw := range lines {
		lineNum := i + 1
		p.logger.Debug("line", "n", lineNum, "text", raw)

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			p.logger.Debug("skipping", "n", lineNum)
			continue
		}

		if err := p.step(&state, lineNum, line); err != nil {
			return nil, err
		}
	}

	state.flush()
	return state.out, nil
}

type parseState struct {
	baseDate  Day
	weekCount int
	field     Field
	open      *Week
	out       []Week
}

func (s *parseState) flush() {
	if s.open != nil {
		s.out = append(s.out, *s.open)
		s.open = nil
	}
}

// entry returns the open entry, opening an unlabelled one if needed.
func (s *parseState) entry() *Week {
	if s.open == nil {
		s.open = &Week{}
	}
	return s.open
}

func (p *Parser) step(s *parseState, lineNum int, line string) error {
	parts := strings.Split(line, ":")
	switch len(parts) {
	case 1:
		return s.continueField(lineNum, line)
	case 2:
	default:
		return &SyntaxError{Line: lineNum, Text: line, Kind: ErrMalformedLine, Parts: parts}
	}

	field := Field(strings.TrimSpace(parts[0]))
	content := strings.TrimSpace(parts[1])
	s.field = field

	switch field {
	case FieldBegin:
		base, err := ParseDay(content)
		if err != nil {
			return &SyntaxError{Line: lineNum, Text: line, Kind: ErrUnparsableDate, Content: content}
		}
		s.baseDate = base
		p.logger.Debug("base date", "date", base.String())
	case FieldWeek:
		s.flush()
		date := s.baseDate.AddDays(7 * s.weekCount)
		s.open = &Week{
			Label:       content,
			Date:        date,
			CurrentWeek: p.isCurrentWeek(date),
		}
		s.weekCount++
	case FieldTopic:
		s.entry().Topic = content
	case FieldProject:
		s.entry().Project = content
	default:
		s.field = ""
		return &SyntaxError{Line: lineNum, Text: line, Kind: ErrUnknownField}
	}
	return nil
}

func (s *parseState) continueField(lineNum int, line string) error {
	var target *string
	switch s.field {
	case FieldWeek:
		target = &s.entry().Label
	case FieldTopic:
		target = &s.entry().Topic
	case FieldProject:
		target = &s.entry().Project
	default:
		return &SyntaxError{Line: lineNum, Text: line, Kind: ErrDanglingContinuation}
	}

	if *target != "" && !strings.HasSuffix(*target, " ") {
		*target += " "
	}
	*target += line + " "
	return nil
}

func (p *Parser) isCurrentWeek(start Day) bool {
	today := DayOf(p.now())
	current := IsCurrentWeekAt(start, today)
	p.logger.Debug("current week check",
		"today", today.String(),
		"from", start.String(),
		"until", start.AddDays(weekSpan).String(),
		"current", current,
	)
	return current
}
