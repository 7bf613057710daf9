// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serializer encodes crop-advisor payloads for terminals, files and
// HTTP clients, and decodes soil samples from files and request bodies.
//
// # Formats
//
//   - text: prose for values implementing TextRenderer, YAML otherwise
//   - json: indented JSON via encoding/json
//   - yaml: two-space YAML via gopkg.in/yaml.v3
//   - table: aligned columns for values implementing TableRenderer,
//     flattened FIELD/VALUE rows otherwise
//
// Only JSON and YAML can be decoded.
//
// # Usage
//
// Writing to a file or stdout:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, rec); err != nil {
//	    return err
//	}
//
// Reading a file, format chosen by extension:
//
//	sample, err := serializer.FromFile[soil.Sample]("sample.yaml")
//
// Responding from an HTTP handler:
//
//	serializer.RespondJSON(w, http.StatusOK, rec)
package serializer
