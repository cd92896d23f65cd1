package twiml

import "encoding/xml"

// Documento mínimo de resposta de voz (TwiML). A ordem dos campos na struct
// define a ordem dos verbos no XML: Say → Dial → Hangup.

type Say struct {
	XMLName xml.Name `xml:"Say"`
	Voice   string   `xml:"voice,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

type Dial struct {
	XMLName xml.Name `xml:"Dial"`
	Number  string   `xml:",chardata"`
}

type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

type Response struct {
	XMLName xml.Name `xml:"Response"`
	Say     []Say
	Dial    *Dial
	Hangup  *Hangup
}

func (r *Response) Render() ([]byte, error) {
	body, err := xml.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Voice monta a resposta padrão do atendimento: saudação e, quando há número
// de encaminhamento, transfere; senão encerra após a mensagem.
func Voice(greeting, voice, forwardTo string) ([]byte, error) {
	resp := &Response{}

	if greeting != "" {
		resp.Say = append(resp.Say, Say{Voice: voice, Text: greeting})
	}

	if forwardTo != "" {
		resp.Dial = &Dial{Number: forwardTo}
	} else {
		resp.Hangup = &Hangup{}
	}

	return resp.Render()
}

// Reject responde uma mensagem curta e desliga (recepcionista desativada)
func Reject(message, voice string) ([]byte, error) {
	resp := &Response{
		Say:    []Say{{Voice: voice, Text: message}},
		Hangup: &Hangup{},
	}
	return resp.Render()
}
