// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"bytes"
	"encoding/binary"
)

const (
	wavSampleRate    = 16000
	wavBitsPerSample = 16
	wavChannels      = 1
)

// EnsureWav 裸 PCM 数据包上 WAV 头，已经是 WAV 的原样返回。
// 采样参数按前端录音的约定：16kHz 16bit 单声道
func EnsureWav(audio []byte) []byte {
	if len(audio) >= 4 && bytes.Equal(audio[:4], []byte("RIFF")) {
		return audio
	}
	dataSize := len(audio)
	var buf bytes.Buffer
	buf.Grow(44 + dataSize)
	buf.WriteString("RIFF")
	writeUint32LE(&buf, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	writeUint32LE(&buf, 16)
	writeUint16LE(&buf, 1)
	writeUint16LE(&buf, wavChannels)
	writeUint32LE(&buf, wavSampleRate)
	writeUint32LE(&buf, wavSampleRate*wavChannels*wavBitsPerSample/8)
	writeUint16LE(&buf, wavChannels*wavBitsPerSample/8)
	writeUint16LE(&buf, wavBitsPerSample)
	buf.WriteString("data")
	writeUint32LE(&buf, uint32(dataSize))
	buf.Write(audio)
	return buf.Bytes()
}

func writeUint32LE(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint16LE(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}
