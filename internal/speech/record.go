package speech

import (
	"bytes"
	"encoding/binary"
	"time"
)

// AudioData is a recorded mono PCM buffer.
type AudioData struct {
	Samples     []int
	SampleRate  int
	SampleWidth int
}

// Record reads the remainder of src into memory.
func Record(src *AudioFile) *AudioData {
	samples := make([]int, 0, len(src.samples)-src.pos)
	for {
		chunk := src.Read(chunkFrames)
		if len(chunk) == 0 {
			break
		}
		samples = append(samples, chunk...)
	}

	return &AudioData{
		Samples:     samples,
		SampleRate:  src.SampleRate(),
		SampleWidth: src.SampleWidth(),
	}
}

func (a *AudioData) Duration() time.Duration {
	if a.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(a.Samples)) * time.Second / time.Duration(a.SampleRate)
}

// WAV encodes the buffer as a canonical RIFF/WAVE PCM file.
func (a *AudioData) WAV() []byte {
	width := a.SampleWidth
	if width < 1 || width > 4 {
		width = 2
	}

	dataSize := len(a.Samples) * width
	buf := bytes.NewBuffer(make([]byte, 0, 44+dataSize))

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(buf, binary.LittleEndian, uint32(a.SampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(a.SampleRate*width))
	_ = binary.Write(buf, binary.LittleEndian, uint16(width))
	_ = binary.Write(buf, binary.LittleEndian, uint16(width*8))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataSize))

	sample := make([]byte, 4)
	for _, s := range a.Samples {
		switch width {
		case 1:
			buf.WriteByte(byte(s))
		case 2:
			binary.LittleEndian.PutUint16(sample, uint16(int16(s)))
			buf.Write(sample[:2])
		case 3:
			binary.LittleEndian.PutUint32(sample, uint32(int32(s)))
			buf.Write(sample[:3])
		case 4:
			binary.LittleEndian.PutUint32(sample, uint32(int32(s)))
			buf.Write(sample[:4])
		}
	}

	return buf.Bytes()
}
