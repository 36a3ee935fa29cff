package browser

// Scripts evaluated inside the converter tab.
const (
	// navigateScript marks the outgoing document as stale before leaving it,
	// so readyStateScript never reports the previous page as complete.
	navigateScript = `window.__bocheckStale = true; location.assign(%s); true`

	readyStateScript = `window.__bocheckStale ? "stale" : document.readyState`

	valueScript = `(() => {
		const el = document.querySelector(%s);
		if (!el) {
			return { found: false, value: "" };
		}
		return { found: true, value: String(el.value ?? "") };
	})()`
)
