// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxTextureSlots is the number of texture registry slots, one per GL
// texture unit used by the scene.
const MaxTextureSlots = 16

type textureEntry struct {
	tag string
	id  uint32
}

// Textures is a tag-keyed registry of loaded GL textures.  Each loaded
// texture occupies one slot, and slots map one-to-one onto texture units
// when BindAll is called.
type Textures struct {
	slots []textureEntry
}

// Load decodes the image file, flips it vertically, uploads it as a mipmapped
// repeating texture, and registers it under tag.  Both RGB and RGBA sources
// are accepted; everything is uploaded as RGBA.
func (t *Textures) Load(file, tag string) error {
	if len(t.slots) >= MaxTextureSlots {
		return fmt.Errorf("texture %q: all %d texture slots in use", tag, MaxTextureSlots)
	}
	rgba, err := loadImage(file)
	if err != nil {
		return fmt.Errorf("texture %q: %w", tag, err)
	}
	slog.Info("loaded texture image", "file", file, "tag", tag,
		"width", rgba.Rect.Dx(), "height", rgba.Rect.Dy())

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t.slots = append(t.slots, textureEntry{tag: tag, id: id})
	return nil
}

// loadImage decodes the file and flips it vertically, matching the
// bottom-left texture origin GL expects for image files stored top-down.
func loadImage(file string) (*image.RGBA, error) {
	img, err := imgio.Open(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	return transform.FlipV(img), nil
}

// BindAll binds each loaded texture to the texture unit matching its slot.
func (t *Textures) BindAll() {
	for i, e := range t.slots {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, e.id)
	}
}

// Slot returns the texture unit index registered for tag, or -1 if the tag
// was never loaded.
func (t *Textures) Slot(tag string) int32 {
	for i, e := range t.slots {
		if e.tag == tag {
			return int32(i)
		}
	}
	return -1
}

// Len returns the number of loaded textures.
func (t *Textures) Len() int {
	return len(t.slots)
}

// Release deletes all registered GL textures.
func (t *Textures) Release() {
	for i := range t.slots {
		gl.DeleteTextures(1, &t.slots[i].id)
	}
	t.slots = nil
}
