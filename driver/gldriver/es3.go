// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import "golang.org/x/exp/gldispatch/gl"

// es3Constants are the OpenGL ES 3.0 constants exposed by glplus in
// addition to the ES 2.0 set.
var es3Constants = []gl.Constant{
	{Name: "GL_READ_BUFFER", Value: 0x0C02},
	{Name: "GL_UNPACK_ROW_LENGTH", Value: 0x0CF2},
	{Name: "GL_UNPACK_SKIP_ROWS", Value: 0x0CF3},
	{Name: "GL_UNPACK_SKIP_PIXELS", Value: 0x0CF4},
	{Name: "GL_PACK_ROW_LENGTH", Value: 0x0D02},
	{Name: "GL_PACK_SKIP_ROWS", Value: 0x0D03},
	{Name: "GL_PACK_SKIP_PIXELS", Value: 0x0D04},
	{Name: "GL_COLOR", Value: 0x1800},
	{Name: "GL_DEPTH", Value: 0x1801},
	{Name: "GL_STENCIL", Value: 0x1802},
	{Name: "GL_RED", Value: 0x1903},
	{Name: "GL_RGB8", Value: 0x8051},
	{Name: "GL_RGBA8", Value: 0x8058},
	{Name: "GL_RGB10_A2", Value: 0x8059},
	{Name: "GL_TEXTURE_BINDING_3D", Value: 0x806A},
	{Name: "GL_UNPACK_SKIP_IMAGES", Value: 0x806D},
	{Name: "GL_UNPACK_IMAGE_HEIGHT", Value: 0x806E},
	{Name: "GL_TEXTURE_3D", Value: 0x806F},
	{Name: "GL_TEXTURE_WRAP_R", Value: 0x8072},
	{Name: "GL_MAX_3D_TEXTURE_SIZE", Value: 0x8073},
	{Name: "GL_MAX_ELEMENTS_VERTICES", Value: 0x80E8},
	{Name: "GL_MAX_ELEMENTS_INDICES", Value: 0x80E9},
	{Name: "GL_TEXTURE_MIN_LOD", Value: 0x813A},
	{Name: "GL_TEXTURE_MAX_LOD", Value: 0x813B},
	{Name: "GL_TEXTURE_BASE_LEVEL", Value: 0x813C},
	{Name: "GL_TEXTURE_MAX_LEVEL", Value: 0x813D},
	{Name: "GL_MIN", Value: 0x8007},
	{Name: "GL_MAX", Value: 0x8008},
	{Name: "GL_DEPTH_COMPONENT24", Value: 0x81A6},
	{Name: "GL_MAJOR_VERSION", Value: 0x821B},
	{Name: "GL_MINOR_VERSION", Value: 0x821C},
	{Name: "GL_NUM_EXTENSIONS", Value: 0x821D},
	{Name: "GL_RG", Value: 0x8227},
	{Name: "GL_RG_INTEGER", Value: 0x8228},
	{Name: "GL_R8", Value: 0x8229},
	{Name: "GL_RG8", Value: 0x822B},
	{Name: "GL_R16F", Value: 0x822D},
	{Name: "GL_R32F", Value: 0x822E},
	{Name: "GL_RG16F", Value: 0x822F},
	{Name: "GL_RG32F", Value: 0x8230},
	{Name: "GL_VERTEX_ARRAY_BINDING", Value: 0x85B5},
	{Name: "GL_RGBA32F", Value: 0x8814},
	{Name: "GL_RGB32F", Value: 0x8815},
	{Name: "GL_RGBA16F", Value: 0x881A},
	{Name: "GL_RGB16F", Value: 0x881B},
	{Name: "GL_MAX_DRAW_BUFFERS", Value: 0x8824},
	{Name: "GL_DRAW_BUFFER0", Value: 0x8825},
	{Name: "GL_PIXEL_PACK_BUFFER", Value: 0x88EB},
	{Name: "GL_PIXEL_UNPACK_BUFFER", Value: 0x88EC},
	{Name: "GL_DEPTH24_STENCIL8", Value: 0x88F0},
	{Name: "GL_UNIFORM_BUFFER", Value: 0x8A11},
	{Name: "GL_MAX_UNIFORM_BUFFER_BINDINGS", Value: 0x8A2F},
	{Name: "GL_SRGB8_ALPHA8", Value: 0x8C43},
	{Name: "GL_TRANSFORM_FEEDBACK_BUFFER", Value: 0x8C8E},
	{Name: "GL_DEPTH_COMPONENT32F", Value: 0x8CAC},
	{Name: "GL_DEPTH32F_STENCIL8", Value: 0x8CAD},
	{Name: "GL_READ_FRAMEBUFFER", Value: 0x8CA8},
	{Name: "GL_DRAW_FRAMEBUFFER", Value: 0x8CA9},
	{Name: "GL_READ_FRAMEBUFFER_BINDING", Value: 0x8CAA},
	{Name: "GL_RENDERBUFFER_SAMPLES", Value: 0x8CAB},
	{Name: "GL_MAX_COLOR_ATTACHMENTS", Value: 0x8CDF},
	{Name: "GL_COLOR_ATTACHMENT1", Value: 0x8CE1},
	{Name: "GL_MAX_SAMPLES", Value: 0x8D57},
	{Name: "GL_RGBA32UI", Value: 0x8D70},
	{Name: "GL_RGBA8UI", Value: 0x8D7C},
	{Name: "GL_RGBA32I", Value: 0x8D82},
	{Name: "GL_RGBA8I", Value: 0x8D8E},
	{Name: "GL_RED_INTEGER", Value: 0x8D94},
	{Name: "GL_RGBA_INTEGER", Value: 0x8D99},
	{Name: "GL_HALF_FLOAT", Value: 0x140B},
	{Name: "GL_COPY_READ_BUFFER", Value: 0x8F36},
	{Name: "GL_COPY_WRITE_BUFFER", Value: 0x8F37},
	{Name: "GL_SYNC_GPU_COMMANDS_COMPLETE", Value: 0x9117},
	{Name: "GL_ALREADY_SIGNALED", Value: 0x911A},
	{Name: "GL_TIMEOUT_EXPIRED", Value: 0x911B},
	{Name: "GL_CONDITION_SATISFIED", Value: 0x911C},
	{Name: "GL_WAIT_FAILED", Value: 0x911D},
}
