package curl

import (
	"strings"
)

// parseCmd groups tokens into flag items and positionals. Unknown flags and
// flags missing their value never abort the parse; they are recorded on the
// segment and become warnings during normalization.
func parseCmd(tok []string, start int) *Cmd {
	cmd := &Cmd{}
	seg := Seg{}
	posOnly := false

	for i := start; i < len(tok); i++ {
		t := tok[i]
		if t == "" {
			continue
		}

		if !posOnly {
			if t == "--" {
				posOnly = true
				continue
			}
			if t == "--next" {
				addSeg(cmd, seg)
				seg = Seg{}
				continue
			}
			if strings.HasPrefix(t, "--") {
				parseLong(&seg, t, tok, &i)
				continue
			}
			if strings.HasPrefix(t, "-") && t != "-" {
				if parseShort(&seg, t, tok, &i) {
					continue
				}
			}
		}

		seg.Items = append(seg.Items, Item{Pos: t})
	}

	addSeg(cmd, seg)
	return cmd
}

func addSeg(cmd *Cmd, seg Seg) {
	if len(seg.Items) == 0 && len(seg.Unk) == 0 && len(seg.Trunc) == 0 {
		return
	}
	cmd.Segs = append(cmd.Segs, seg)
}

func parseLong(seg *Seg, t string, tok []string, i *int) {
	name, val, hasVal := splitLong(t)
	if name == "" {
		seg.Unk = append(seg.Unk, t)
		return
	}

	def := longDefs[name]
	if def == nil {
		seg.Unk = append(seg.Unk, "--"+name)
		return
	}

	if def.kind == optVal && !hasVal {
		nv, ok := consumeNext(tok, i)
		if !ok {
			seg.Trunc = append(seg.Trunc, "--"+name)
			return
		}
		val = nv
	}

	seg.Items = append(seg.Items, optItem(def.key, val))
}

func splitLong(t string) (string, string, bool) {
	if !strings.HasPrefix(t, "--") || len(t) < 3 {
		return "", "", false
	}

	raw := t[2:]
	if raw == "" {
		return "", "", false
	}

	if idx := strings.Index(raw, "="); idx >= 0 {
		return raw[:idx], raw[idx+1:], true
	}

	return raw, "", false
}

// parseShort handles bundled short flags ("-sSL") and attached values
// ("-XPOST"). Reports false when nothing in the token was recognizable so the
// caller can treat it as a positional.
func parseShort(seg *Seg, t string, tok []string, i *int) bool {
	raw := t[1:]
	consumed := false

	for j := 0; j < len(raw); j++ {
		ch := rune(raw[j])
		def := shortDefs[ch]
		if def == nil {
			seg.Unk = append(seg.Unk, "-"+string(ch))
			consumed = true
			continue
		}

		consumed = true
		if def.kind == optNone {
			seg.Items = append(seg.Items, optItem(def.key, ""))
			continue
		}

		val := ""
		if j+1 < len(raw) {
			val = raw[j+1:]
		} else {
			nv, ok := consumeNext(tok, i)
			if !ok {
				seg.Trunc = append(seg.Trunc, "-"+string(ch))
				return true
			}
			val = nv
		}
		seg.Items = append(seg.Items, optItem(def.key, val))
		break
	}
	return consumed
}

func consumeNext(tokens []string, idx *int) (string, bool) {
	if *idx+1 >= len(tokens) {
		return "", false
	}
	*idx++
	return tokens[*idx], true
}

func optItem(key, val string) Item {
	return Item{Opt: Opt{Key: key, Val: val}, IsOpt: true}
}
