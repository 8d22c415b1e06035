package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type LeadMailData struct {
	LeadName string
}

const leadWonTemplate = `
<html>
  <body>
    <h2>Parabéns! 🎉</h2>
    <p>O lead <strong>{{.LeadName}}</strong> acabou de ser marcado como <strong>Fechado</strong> no seu funil.</p>
    <p>Bora para o próximo!</p>
  </body>
</html>
`

const leadStaleTemplate = `
<html>
  <body>
    <h2>Lead esfriando ⏰</h2>
    <p>O lead <strong>{{.LeadName}}</strong> está sem movimentação há mais de 14 dias.</p>
    <p>Que tal um follow-up?</p>
  </body>
</html>
`
