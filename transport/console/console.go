package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/onlyupgames/onlyup-backend/internal/entity"
)

// gameManager is the slice of the usecase layer the console needs.
type gameManager interface {
	MakeTurn(ctx context.Context, pos entity.Position) error
	Render() string
	StatusLine() string
	Done() bool
	CurrentLevel() int
	CurrentPlayer() string
}

// Console runs the interactive text mode: dump the board each turn, prompt
// the current player for "row,col" and feed valid moves to the engine.
type Console struct {
	manager gameManager
	in      *bufio.Scanner
	out     io.Writer
}

func New(manager gameManager, in io.Reader, out io.Writer) *Console {
	return &Console{
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays one game to completion. It returns nil when the game finishes
// or input runs out, and the context error when ctx is cancelled.
func (that *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(that.out, that.manager.Render())
		if status := that.manager.StatusLine(); status != "" {
			fmt.Fprintln(that.out, status)
		}

		if that.manager.Done() {
			return nil
		}

		if err := that.promptMove(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fmt.Fprintln(that.out)
	}
}

// promptMove keeps asking until a syntactically and semantically valid move
// has been applied. Invalid input never touches the engine.
func (that *Console) promptMove(ctx context.Context) error {
	for {
		fmt.Fprintf(that.out, "%s, please enter row,col: ", that.manager.CurrentPlayer())

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return err
			}
			return io.EOF
		}

		row, col, err := parseMove(that.in.Text())
		if err != nil {
			fmt.Fprintln(that.out, err)
			continue
		}

		pos := entity.Position{X: col - 1, Y: row - 1, Z: that.manager.CurrentLevel()}
		if err := that.manager.MakeTurn(ctx, pos); err != nil {
			fmt.Fprintln(that.out, err)
			continue
		}

		return nil
	}
}

// parseMove reads a 1-based "row,col" pair.
func parseMove(line string) (int, int, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return 0, 0, errors.New("expected row,col")
	}

	nums := make([]int, 0, 2)
	for _, field := range fields {
		num, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return 0, 0, errors.New("expected row,col")
		}
		if num < 1 || num > entity.Size {
			return 0, 0, fmt.Errorf("out of range: %d", num)
		}
		nums = append(nums, num)
	}

	return nums[0], nums[1], nil
}
