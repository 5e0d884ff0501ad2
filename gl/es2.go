// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "sort"

// A Signature names a GL entry point and whether it produces a value.
type Signature struct {
	Name    string
	Returns bool
}

// es2Functions is the OpenGL ES 2.0 function set as exposed by Go bindings
// such as golang.org/x/mobile/gl: object creation returns the new object
// and queries return their values rather than filling pointers.
var es2Functions = []Signature{
	{"glActiveTexture", false},
	{"glAttachShader", false},
	{"glBindAttribLocation", false},
	{"glBindBuffer", false},
	{"glBindFramebuffer", false},
	{"glBindRenderbuffer", false},
	{"glBindTexture", false},
	{"glBindVertexArray", false},
	{"glBlendColor", false},
	{"glBlendEquation", false},
	{"glBlendEquationSeparate", false},
	{"glBlendFunc", false},
	{"glBlendFuncSeparate", false},
	{"glBufferData", false},
	{"glBufferInit", false},
	{"glBufferSubData", false},
	{"glCheckFramebufferStatus", true},
	{"glClear", false},
	{"glClearColor", false},
	{"glClearDepthf", false},
	{"glClearStencil", false},
	{"glColorMask", false},
	{"glCompileShader", false},
	{"glCompressedTexImage2D", false},
	{"glCompressedTexSubImage2D", false},
	{"glCopyTexImage2D", false},
	{"glCopyTexSubImage2D", false},
	{"glCreateBuffer", true},
	{"glCreateFramebuffer", true},
	{"glCreateProgram", true},
	{"glCreateRenderbuffer", true},
	{"glCreateShader", true},
	{"glCreateTexture", true},
	{"glCreateVertexArray", true},
	{"glCullFace", false},
	{"glDeleteBuffer", false},
	{"glDeleteFramebuffer", false},
	{"glDeleteProgram", false},
	{"glDeleteRenderbuffer", false},
	{"glDeleteShader", false},
	{"glDeleteTexture", false},
	{"glDeleteVertexArray", false},
	{"glDepthFunc", false},
	{"glDepthMask", false},
	{"glDepthRangef", false},
	{"glDetachShader", false},
	{"glDisable", false},
	{"glDisableVertexAttribArray", false},
	{"glDrawArrays", false},
	{"glDrawElements", false},
	{"glEnable", false},
	{"glEnableVertexAttribArray", false},
	{"glFinish", false},
	{"glFlush", false},
	{"glFramebufferRenderbuffer", false},
	{"glFramebufferTexture2D", false},
	{"glFrontFace", false},
	{"glGenerateMipmap", false},
	{"glGetActiveAttrib", true},
	{"glGetActiveUniform", true},
	{"glGetAttachedShaders", true},
	{"glGetAttribLocation", true},
	{"glGetBooleanv", false},
	{"glGetBufferParameteri", true},
	{"glGetError", true},
	{"glGetFloatv", false},
	{"glGetFramebufferAttachmentParameteri", true},
	{"glGetInteger", true},
	{"glGetIntegerv", false},
	{"glGetProgramInfoLog", true},
	{"glGetProgrami", true},
	{"glGetRenderbufferParameteri", true},
	{"glGetShaderInfoLog", true},
	{"glGetShaderPrecisionFormat", true},
	{"glGetShaderSource", true},
	{"glGetShaderi", true},
	{"glGetString", true},
	{"glGetTexParameterfv", false},
	{"glGetTexParameteriv", false},
	{"glGetUniformLocation", true},
	{"glGetUniformfv", false},
	{"glGetUniformiv", false},
	{"glGetVertexAttribf", true},
	{"glGetVertexAttribfv", false},
	{"glGetVertexAttribi", true},
	{"glGetVertexAttribiv", false},
	{"glHint", false},
	{"glIsBuffer", true},
	{"glIsEnabled", true},
	{"glIsFramebuffer", true},
	{"glIsProgram", true},
	{"glIsRenderbuffer", true},
	{"glIsShader", true},
	{"glIsTexture", true},
	{"glLineWidth", false},
	{"glLinkProgram", false},
	{"glPixelStorei", false},
	{"glPolygonOffset", false},
	{"glReadPixels", false},
	{"glReleaseShaderCompiler", false},
	{"glRenderbufferStorage", false},
	{"glSampleCoverage", false},
	{"glScissor", false},
	{"glShaderSource", false},
	{"glStencilFunc", false},
	{"glStencilFuncSeparate", false},
	{"glStencilMask", false},
	{"glStencilMaskSeparate", false},
	{"glStencilOp", false},
	{"glStencilOpSeparate", false},
	{"glTexImage2D", false},
	{"glTexParameterf", false},
	{"glTexParameterfv", false},
	{"glTexParameteri", false},
	{"glTexParameteriv", false},
	{"glTexSubImage2D", false},
	{"glUniform1f", false},
	{"glUniform1fv", false},
	{"glUniform1i", false},
	{"glUniform1iv", false},
	{"glUniform2f", false},
	{"glUniform2fv", false},
	{"glUniform2i", false},
	{"glUniform2iv", false},
	{"glUniform3f", false},
	{"glUniform3fv", false},
	{"glUniform3i", false},
	{"glUniform3iv", false},
	{"glUniform4f", false},
	{"glUniform4fv", false},
	{"glUniform4i", false},
	{"glUniform4iv", false},
	{"glUniformMatrix2fv", false},
	{"glUniformMatrix3fv", false},
	{"glUniformMatrix4fv", false},
	{"glUseProgram", false},
	{"glValidateProgram", false},
	{"glVertexAttrib1f", false},
	{"glVertexAttrib1fv", false},
	{"glVertexAttrib2f", false},
	{"glVertexAttrib2fv", false},
	{"glVertexAttrib3f", false},
	{"glVertexAttrib3fv", false},
	{"glVertexAttrib4f", false},
	{"glVertexAttrib4fv", false},
	{"glVertexAttribPointer", false},
	{"glViewport", false},
}

// ES2 is the reference OpenGL ES 2.0 table. Its functions and constants
// make up the canonical namespace every non-extended backend must provide.
// The functions in ES2 are placeholders that return ErrNoBackend.
var ES2 Source = newReference()

// ES2Functions returns the canonical ES 2.0 function signatures, sorted by
// name.
func ES2Functions() []Signature {
	sigs := append([]Signature(nil), es2Functions...)
	sort.Slice(sigs, func(i, j int) bool { return sigs[i].Name < sigs[j].Name })
	return sigs
}

// ES2Constants returns the ES 2.0 constants in gl2.h order.
func ES2Constants() []Constant {
	return append([]Constant(nil), es2Constants...)
}

func newReference() Table {
	t := make(Table, len(es2Functions)+len(es2Constants))
	for _, sig := range es2Functions {
		t.Add(unbound(sig))
	}
	t.AddConstants(es2Constants...)
	return t
}

func unbound(sig Signature) *Function {
	return &Function{
		Name:    sig.Name,
		Returns: sig.Returns,
		Call: func(...any) (any, error) {
			return nil, ErrNoBackend
		},
	}
}
