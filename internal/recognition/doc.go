// Package recognition wraps an external OCR engine behind a small session
// type that owns the current list of recognized text regions.
//
// # Engine Boundary
//
// The Engine interface is the only contact point with the recognition
// implementation: it receives a raw image byte buffer and returns ordered
// observations. TesseractEngine is the bundled implementation (gosseract);
// anything that can produce normalized boxes satisfies the interface, which
// is also how tests inject failures.
//
// Observations expose two independent capabilities: every observation has a
// normalized bounding rectangle, and observations from engines that report
// corner geometry additionally expose a quadrilateral. Consumers check the
// quad capability explicitly instead of type-switching on engine types.
//
// # Session Semantics
//
// A Session holds exactly one generation of observations. Recognize clears
// the held list, runs the engine, and on success replaces the list with the
// new results in engine order; on failure the list stays empty and the
// engine error is surfaced as a RecognitionError. Results are never merged
// across calls. A mutex serializes Recognize, so at most one recognition is
// in flight per session and readers never observe a partial update.
//
// Interested parties register a callback with Subscribe rather than polling;
// the session notifies them with a fresh snapshot after every Recognize,
// successful or not.
package recognition
