// Package boards describes the EEG headsets the acquisition layer knows
// how to drive, and maps recording sessions to the headset they were
// captured with so tagged-interval channel references can be checked
// against channels that actually existed.
package boards

// Board is one headset model as reported by the acquisition firmware.
type Board struct {
	ID           string
	Name         string
	EEGChannels  []string
	SamplingRate int
	// PPG reports whether the headset carries photoplethysmogram sensors
	// (red + infrared channels uploaded alongside EEG).
	PPG bool
}

var (
	// Muse2 and MuseS share the four-electrode layout; both stream PPG.
	Muse2 = Board{
		ID:           "MUSE_2",
		Name:         "Muse 2",
		EEGChannels:  []string{"TP9", "Fp1", "Fp2", "TP10"},
		SamplingRate: 256,
		PPG:          true,
	}
	MuseS = Board{
		ID:           "MUSE_S",
		Name:         "Muse S",
		EEGChannels:  []string{"TP9", "Fp1", "Fp2", "TP10"},
		SamplingRate: 256,
		PPG:          true,
	}
	// Synthetic is the signal-generator board used in tests and demos.
	Synthetic = Board{
		ID:           "SYNTHETIC",
		Name:         "Synthetic",
		EEGChannels:  []string{"F3", "F4", "C3", "C4", "P3", "P4", "O1", "O2"},
		SamplingRate: 250,
	}
)

var byID = map[string]Board{
	Muse2.ID:     Muse2,
	MuseS.ID:     MuseS,
	Synthetic.ID: Synthetic,
}

// ByID looks up a known headset model.
func ByID(id string) (Board, bool) {
	b, ok := byID[id]
	return b, ok
}

// HasChannel reports whether name is one of the board's EEG channels.
func (b Board) HasChannel(name string) bool {
	for _, ch := range b.EEGChannels {
		if ch == name {
			return true
		}
	}
	return false
}
