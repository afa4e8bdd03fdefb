// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import _ "embed"

// Phong shader pair implementing the scene's uniform protocol:
// model/view/projection matrices, objectColor + bUseTexture + objectTexture +
// UVscale, bUseLighting + material.* + lightSources[0..3].*.

//go:embed shaders/phong.vert
var PhongVertexSource string

//go:embed shaders/phong.frag
var PhongFragmentSource string
