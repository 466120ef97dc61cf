// Package imaging handles image loading and caching for the tool surface.
//
// The central type is ImageCache, a thread-safe cache keyed by file path.
// Every tool that names an image path goes through the cache, so a sequence
// of calls against the same photo (load, recognize, annotate) reads and
// decodes the file exactly once. Entries keep both the decoded pixels and
// the original encoded bytes: recognition wants the raw buffer, annotation
// wants the pixels.
//
// LoadImageInfo and GetDimensions report image metadata; the dimensions are
// what clients use to build the pixel-space target rectangle for overlays.
package imaging
