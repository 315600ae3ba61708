package ws

// CrawlNotifier forwards crawl discovery events to every watcher of a run.
// It satisfies crawler.Observer.
type CrawlNotifier struct {
	hub   *Hub
	runID string
}

// NewCrawlNotifier creates a notifier bound to one run
func NewCrawlNotifier(hub *Hub, runID string) *CrawlNotifier {
	return &CrawlNotifier{hub: hub, runID: runID}
}

func (n *CrawlNotifier) SynsetDiscovered(id, lemma string, depth int) {
	n.hub.BroadcastToRun(n.runID, MsgSynsetDiscovered, map[string]interface{}{
		"synsetId": id,
		"lemma":    lemma,
		"depth":    depth,
	})
}

func (n *CrawlNotifier) RelationSeen(relation, fromID, toID, lemma string) {
	n.hub.BroadcastToRun(n.runID, MsgRelationSeen, map[string]interface{}{
		"relation": relation,
		"fromId":   fromID,
		"toId":     toID,
		"lemma":    lemma,
	})
}
