// This file is part of Chipper.
//
// Chipper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chipper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chipper.  If not, see <https://www.gnu.org/licenses/>.

package speaker

import (
	"time"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/gui"
	"github.com/chipper-emu/chipper/logger"
	"github.com/ebitengine/oto/v3"
)

// Speaker implements the gui.AudioSink interface with the audio device of the
// host.
type Speaker struct {
	*Tone

	ctx    *oto.Context
	player *oto.Player
}

// NewSpeaker is the preferred method of initialisation for the Speaker type.
// Only one Speaker can be created by a program.
func NewSpeaker() (*Speaker, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   20 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(gui.Unavailable, "speaker", err)
	}
	<-ready

	spk := &Speaker{
		Tone: NewTone(SampleRate, Frequency),
		ctx:  ctx,
	}
	spk.player = ctx.NewPlayer(spk.Tone)
	spk.player.Play()

	logger.Logf(logger.Allow, "speaker", "playing at %dHz", SampleRate)

	return spk, nil
}

// Close stops the speaker.
func (spk *Speaker) Close() error {
	if err := spk.player.Close(); err != nil {
		return curated.Errorf("speaker: %v", err)
	}
	return nil
}
