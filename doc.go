/*
Package triangle draws a single white triangle with OpenGL 3.3 core.

# Overview

The package holds everything that does not need a live context: the
embedded shader sources, the shader program builder, the vertex data and
its layout, and the render loop. Graphics calls go through the Device
interfaces, and the window through Window, so the same code runs against
the OpenGL backend in backend/opengl or against fakes in tests.

# Quick Start

	window, _ := opengl.OpenWindow(triangle.DefaultConfig())
	defer window.Close()
	dev, _ := opengl.NewDevice()

	program, err := triangle.BuildProgram(dev, triangle.VertexShaderSource, triangle.FragmentShaderSource, os.Stdout)
	if err != nil {
	    // diagnostics were already printed; the handle is still returned
	}
	defer program.Delete()

	window.SetKeyHandler(triangle.CloseOnEscape(window))
	mesh := triangle.NewTriangleMesh(dev)
	defer mesh.Delete()

	triangle.Run(window, triangle.NewRenderer(dev, program, mesh, nil))

# Shader diagnostics

A failed compile or link writes a header line followed by the driver log:

	ERROR::SHADER::VERTEX::COMPILATION_FAILED
	ERROR::SHADER::FRAGMENT::COMPILATION_FAILED
	ERROR::SHADER::PROGRAM::LINKING_FAILED

# Render loop

Run checks the window's close flag once per iteration. Each iteration sets
the viewport, clears the color buffer, draws the mesh, swaps buffers and
polls events. Pressing Escape (see CloseOnEscape) or the window's close
control sets the flag during PollEvents, so no further frame is drawn.
*/
package triangle
