// Package urls exposes URL handling as service tools.
//
// Tools are grouped by module:
//   - codec: urls.quote, urls.percentEncode, urls.unquote, urls.unescape, urls.findNonPrintable
//   - paths: urls.normalizePath, urls.validatePath, urls.matchPath
//   - build: urls.buildURL, urls.parseURL
//   - query: urls.query.parse, urls.query.set, urls.query.add, urls.query.remove,
//     urls.query.merge, urls.query.get
//   - links: urls.extractLinks
//
// Failures raised by the URL core carry their kind in Result.ErrorKind.
package urls
