package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var Log = logrus.New()

const (
	headerHeight  = 50
	minWindowWith = 200
	cellGap       = 1
)

type Options struct {
	CellWidth uint

	// Plays on the player's behalf when set
	Director         game.Director
	DirectorInterval time.Duration
}

type shell struct {
	board   *game.Board
	options Options

	win   *pixelgl.Window
	atlas *text.Atlas

	boardTop float64
	autoplay bool
}

// Run opens a window showing board and forwards input to it until the
// window is closed. It must be called from pixelgl.Run.
func Run(board *game.Board, options Options) error {
	s := &shell{
		board:   board,
		options: options,
		atlas:   text.NewAtlas(basicfont.Face7x13, text.ASCII),
	}

	cfg := pixelgl.WindowConfig{
		Title:  "gosweep",
		Bounds: s.windowBounds(),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	s.win = win
	s.resize()

	var (
		frames = 0
		second = time.Tick(time.Second)
		step   <-chan time.Time
	)
	if options.Director != nil && options.DirectorInterval > 0 {
		step = time.Tick(options.DirectorInterval)
	}

	for !win.Closed() {
		win.Update()
		win.Clear(colornames.Gainsboro)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		select {
		case <-step:
			if s.autoplay {
				s.directorStep()
			}
		default:
		}

		s.handleInput()
		s.drawHeader()
		s.drawBoard()
	}

	return nil
}

func (s *shell) windowBounds() pixel.Rect {
	side := float64(uint(s.board.Size()) * s.options.CellWidth)
	return pixel.R(0, 0, math.Max(side, minWindowWith), side+headerHeight)
}

func (s *shell) resize() {
	s.win.SetBounds(s.windowBounds())
	s.boardTop = s.win.Bounds().H() - headerHeight
}

func (s *shell) restart() {
	s.board.Restart()
	s.autoplay = false
	s.resize()
}

// screenToGridCoords maps a window position to a cell, returning false
// outside the board.
func (s *shell) screenToGridCoords(pos pixel.Vec) (int, int, bool) {
	width := float64(s.options.CellWidth)
	row := int(math.Floor((s.boardTop - pos.Y) / width))
	col := int(math.Floor(pos.X / width))
	return row, col, s.board.InBounds(row, col)
}

func (s *shell) cellRect(row, col int) pixel.Rect {
	width := float64(s.options.CellWidth)
	corner := pixel.V(float64(col)*width, s.boardTop-float64(row+1)*width)
	return pixel.R(corner.X+cellGap, corner.Y+cellGap, corner.X+width-cellGap, corner.Y+width-cellGap)
}

func (s *shell) handleInput() {
	win := s.win

	if s.board.IsGameOver() {
		// Start a new game with Enter
		if win.JustPressed(pixelgl.KeyEnter) {
			s.restart()
		}
		return
	}

	if s.options.Director != nil {
		// Toggle autoplay with Space, single step with Right Arrow
		if win.JustPressed(pixelgl.KeySpace) {
			s.autoplay = !s.autoplay
		}
		if win.JustPressed(pixelgl.KeyRight) || win.Repeated(pixelgl.KeyRight) {
			s.directorStep()
		}
	}

	if !win.MouseInsideWindow() {
		return
	}
	row, col, ok := s.screenToGridCoords(win.MousePosition())
	if !ok {
		return
	}

	switch {
	case win.JustPressed(pixelgl.MouseButtonLeft):
		s.board.Click(row, col)
	case win.JustPressed(pixelgl.MouseButtonRight):
		s.board.ToggleFlag(row, col)
	case win.JustPressed(pixelgl.MouseButtonMiddle):
		s.board.ChordReveal(row, col)
	}
}

func (s *shell) directorStep() {
	if action, ok := s.options.Director.Next(s.board); ok {
		Log.WithField("action", action).Debug("director step")
		s.board.Apply(action)
	}
}

func (s *shell) drawHeader() {
	topLeft := pixel.V(0, s.win.Bounds().H())

	header := text.New(topLeft.Add(pixel.V(20, -30)), s.atlas)
	header.Color = colornames.Black
	fmt.Fprintf(header, "%03d", s.board.MinesLeft())

	switch s.board.State() {
	case game.Won:
		header.Color = colornames.Green
		fmt.Fprint(header, "   WIN!")
	case game.Lost:
		header.Color = colornames.Red
		fmt.Fprint(header, "   LOSE :(")
	default:
		if s.autoplay {
			header.Color = colornames.Darkcyan
			fmt.Fprint(header, "   AUTO")
		}
	}
	header.Draw(s.win, pixel.IM)
}

func (s *shell) drawBoard() {
	imd := imdraw.New(nil)
	labels := text.New(pixel.ZV, s.atlas)

	for row := 0; row < s.board.Size(); row++ {
		for col := 0; col < s.board.Size(); col++ {
			rect := s.cellRect(row, col)
			look := appearance(s.board, row, col)

			imd.Color = look.background
			imd.Push(rect.Min, rect.Max)
			imd.Rectangle(0) // 0 = filled

			if look.label != "" {
				labels.Color = look.foreground
				labels.Dot = rect.Center().Sub(pixel.V(3, 4))
				fmt.Fprint(labels, look.label)
			}
		}
	}

	imd.Draw(s.win)
	labels.Draw(s.win, pixel.IM)
}

type cellLook struct {
	label      string
	foreground color.Color
	background color.Color
}

func appearance(board *game.Board, row, col int) cellLook {
	switch {
	case board.IsRevealed(row, col) && board.IsMine(row, col):
		look := cellLook{label: "M", foreground: colornames.Black, background: colornames.Red}
		if board.IsFlagged(row, col) {
			look.background = colornames.Orange
		}
		if board.IsLosingMine(row, col) {
			look.background = colornames.Darkred
		}
		return look
	case board.IsFlagged(row, col):
		look := cellLook{label: "F", foreground: colornames.Black, background: colornames.Yellow}
		if board.State() == game.Lost {
			// Wrongly flagged
			look.label = "X"
		}
		return look
	case board.IsRevealed(row, col):
		count := board.AdjacentCount(row, col)
		look := cellLook{foreground: numberColor(count), background: colornames.White}
		if count > 0 {
			look.label = fmt.Sprint(count)
		}
		return look
	default:
		return cellLook{background: colornames.Lightgray}
	}
}

func numberColor(count int) color.Color {
	switch count {
	case 1:
		return colornames.Blue
	case 2:
		return colornames.Green
	case 3:
		return colornames.Red
	case 4:
		return colornames.Magenta
	case 5:
		return colornames.Orange
	case 6:
		return colornames.Cyan
	case 7:
		return colornames.Black
	case 8:
		return colornames.Gray
	default:
		return colornames.Black
	}
}
